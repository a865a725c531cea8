package model

import "fmt"

// FormatGrievanceNumber собирает публичный номер обращения GRV-YYYY-NNNNNN.
// Формат стабилен: однажды выданный номер живёт во внешних системах.
func FormatGrievanceNumber(year int, seq int64) string {
	return fmt.Sprintf("GRV-%d-%06d", year, seq)
}
