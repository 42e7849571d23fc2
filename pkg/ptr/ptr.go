package ptr

// Ptr возвращает указатель на переданное значение
// Удобно для опциональных полей в фильтрах и запросах
func Ptr[T any](v T) *T {
	return &v
}
