package repository

import (
	"time"
)

// CacheRepository определяет методы для работы с кешем.
// Используется для кеширования замороженных полезных нагрузок тестов:
// тест после создания неизменяем, поэтому кеш не может устареть.
type CacheRepository interface {
	Get(key string) (string, error)
	Set(key string, value interface{}, expiration time.Duration) error
	Delete(key string) error
	SetJSON(key string, value interface{}, expiration time.Duration) error
	GetJSON(key string, dest interface{}) error
}
