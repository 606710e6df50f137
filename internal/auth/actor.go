package auth

import "supermock_backend/internal/models"

// VirtualAdminID - сентинел для встроенного админа, не имеющего записи
// в таблице users. Сравнение с ним происходит только здесь, на границе
// авторизации.
const VirtualAdminID = "00000000-0000-0000-0000-000000000001"

// Actor - текущий субъект запроса. Либо реальный пользователь из БД,
// либо виртуальный админ (Virtual=true).
type Actor struct {
	ID      string
	Role    models.UserRole
	Virtual bool
}

// ResolveActor строит Actor из claims токена. Виртуальный админ
// распознается по сентинел-идентификатору.
func ResolveActor(userID, role string) Actor {
	if userID == VirtualAdminID {
		return Actor{ID: userID, Role: models.UserRoleAdmin, Virtual: true}
	}
	return Actor{ID: userID, Role: models.UserRole(role)}
}

// IsAdmin: админом считается и виртуальный, и пользователь с ролью ADMIN
func (a Actor) IsAdmin() bool {
	return a.Virtual || a.Role == models.UserRoleAdmin
}

// Unlimited: субъекты, на которых не действуют лимиты карточек
func (a Actor) Unlimited() bool {
	return a.IsAdmin()
}
