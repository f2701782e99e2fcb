// internal/component/wave.go
package component

// SpawnEntry — одна запись очереди спавна: кого, какого уровня и через
// сколько секунд после старта волны выпускать.
type SpawnEntry struct {
	EnemyID        string
	Level          int
	Delay          float64
	HealthOverride int // 0 — здоровье из библиотеки по уровню
}

// Wave — состояние текущей волны. Очередь отсортирована по Delay и
// выедается с головы; Next — индекс первой невыпущенной записи.
type Wave struct {
	Number    int
	StartedAt float64 // часы симуляции на момент старта
	Queue     []SpawnEntry
	Next      int
}

// QueueEmpty сообщает, выпущены ли все записи очереди.
func (w *Wave) QueueEmpty() bool {
	return w.Next >= len(w.Queue)
}
