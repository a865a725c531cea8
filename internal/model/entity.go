package model

import "time"

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// Grievance — обращение гражданина. grievance_number выдаётся один раз
// (GRV-YYYY-NNNNNN, из sequence) и после этого не меняется.
type Grievance struct {
	ID                      uint64          `gorm:"primaryKey" json:"id"`
	GrievanceNumber         string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"grievance_number"`
	CitizenID               int64           `gorm:"index;not null" json:"citizen_id"`
	DepartmentID            int64           `gorm:"index;not null" json:"department_id"`
	CategoryID              int64           `gorm:"index;not null" json:"category_id"`
	Title                   string          `gorm:"type:varchar(200);not null" json:"title"`
	Description             string          `gorm:"type:text;not null" json:"description"`
	Status                  GrievanceStatus `gorm:"type:varchar(32);index;not null" json:"status"`
	AssignedOfficerID       *int64          `gorm:"index" json:"assigned_officer_id,omitempty"`
	EscalatedToSupervisorID *int64          `json:"escalated_to_supervisor_id,omitempty"`
	Priority                Priority        `gorm:"type:varchar(16);not null" json:"priority"`
	ResolutionRemarks       string          `gorm:"type:text" json:"resolution_remarks,omitempty"`
	ResolvedAt              *time.Time      `json:"resolved_at,omitempty"`
	ClosedAt                *time.Time      `json:"closed_at,omitempty"`
	EscalatedAt             *time.Time      `json:"escalated_at,omitempty"`
	AutoEscalationDeadline  *time.Time      `gorm:"index" json:"auto_escalation_deadline,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusHistory — журнал переходов статуса, append-only. Строки никогда не
// обновляются и не удаляются; ровно одна строка на переход.
type StatusHistory struct {
	ID          uint64           `gorm:"primaryKey" json:"id"`
	GrievanceID uint64           `gorm:"index;not null" json:"grievance_id"`
	OldStatus   *GrievanceStatus `gorm:"type:varchar(32)" json:"old_status,omitempty"`
	NewStatus   GrievanceStatus  `gorm:"type:varchar(32);not null" json:"new_status"`
	ChangedBy   *int64           `json:"changed_by,omitempty"`
	IsSystem    bool             `gorm:"not null;default:false" json:"is_system"`
	Remarks     string           `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func (h *StatusHistory) Actor() Actor {
	if h.IsSystem || h.ChangedBy == nil {
		return SystemActor()
	}
	return UserActor(*h.ChangedBy)
}

// SetActor заполняет changed_by/is_system из тегированного Actor.
func (h *StatusHistory) SetActor(a Actor) {
	if a.System {
		h.ChangedBy = nil
		h.IsSystem = true
		return
	}
	id := a.UserID
	h.ChangedBy = &id
	h.IsSystem = false
}

func (StatusHistory) TableName() string { return "grievance_status_history" }

type Comment struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	GrievanceID uint64 `gorm:"index;not null" json:"grievance_id"`
	SenderID    int64  `gorm:"not null" json:"sender_id"`
	SenderRole  Role   `gorm:"type:varchar(32);not null" json:"sender_role"`
	Message     string `gorm:"type:text;not null" json:"message"`
	// IsInternal скрывает комментарий от гражданина (фильтрует слой выдачи).
	IsInternal bool      `gorm:"not null;default:false" json:"is_internal"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Comment) TableName() string { return "grievance_comments" }

type Document struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	GrievanceID    uint64    `gorm:"index;not null" json:"grievance_id"`
	FileName       string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileType       string    `gorm:"type:varchar(100)" json:"file_type,omitempty"`
	FileSize       int64     `json:"file_size"`
	FileData       []byte    `gorm:"type:bytea" json:"-"`
	UploadedBy     int64     `gorm:"not null" json:"uploaded_by"`
	UploadedByRole Role      `gorm:"type:varchar(32);not null" json:"uploaded_by_role"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Document) TableName() string { return "grievance_documents" }

type Department struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	ContactEmail string    `gorm:"type:varchar(255)" json:"contact_email,omitempty"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Category принадлежит ровно одному департаменту; имя уникально внутри него.
type Category struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	DepartmentID int64     `gorm:"index:idx_categories_dept_name,unique;not null" json:"department_id"`
	Name         string    `gorm:"type:varchar(100);index:idx_categories_dept_name,unique;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
