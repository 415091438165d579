// internal/component/health.go
package component

// Health — компонент здоровья. Сущность с Value <= 0 помечается
// на удаление в том же тике и вычищается на фазе очистки.
type Health struct {
	Value float64
	Max   float64
}
