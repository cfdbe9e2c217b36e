// Package users — идемпотентная регистрация пользователей.
package users

import "telegram-retail-reports/internal/models"

// Storage — операции хранилища, нужные регистрации.
type Storage interface {
	FindUser(id int64) (*models.User, error)
	InsertUser(u *models.User) error
}

// GetOrCreate возвращает пользователя по id, создавая запись при
// первом обращении. Существующая запись возвращается без изменений:
// name и store задают только начальные значения.
func GetOrCreate(s Storage, id int64, name, store string) (*models.User, error) {
	u, err := s.FindUser(id)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	u = &models.User{ID: id, Name: name, Store: store}
	if err := s.InsertUser(u); err != nil {
		return nil, err
	}
	return u, nil
}
