package domain

// User - профиль администратора, возвращаемый бэкендом при логине.
// Хранится сериализованным в локальном состоянии вместе с токеном.
type User struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

// FullName возвращает имя и фамилию одной строкой
func (u *User) FullName() string {
	switch {
	case u.Firstname == "":
		return u.Lastname
	case u.Lastname == "":
		return u.Firstname
	default:
		return u.Firstname + " " + u.Lastname
	}
}
