package domain

// Identity - аутентифицированный пользователь, полученный по bearer-токену.
type Identity struct {
	UserID string
	Email  string
	Role   string
}
