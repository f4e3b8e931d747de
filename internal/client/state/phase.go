// Package state содержит синхронизируемое состояние клиента: два независимых
// среза (сессия и коллекция статей), каждый из которых обновляется чистыми
// функциями-переходами по событиям фаз запросов.
package state

// Phase — наблюдаемая фаза асинхронного действия
type Phase int

const (
	PhaseRequested Phase = iota
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseRequested:
		return "requested"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}
