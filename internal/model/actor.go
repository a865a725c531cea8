package model

import "strconv"

// Actor — кто выполнил переход: конкретный пользователь или сам сервис
// (планировщик эскалации). Заменяет магический "system user id = 0".
type Actor struct {
	UserID int64
	System bool
}

func UserActor(id int64) Actor { return Actor{UserID: id} }

func SystemActor() Actor { return Actor{System: true} }

func (a Actor) String() string {
	if a.System {
		return "system"
	}
	return "user:" + strconv.FormatInt(a.UserID, 10)
}
