package port

// Исходы запроса раскрытия контакта для метрик.
const (
	OutcomeOK           = "ok"
	OutcomeBadRequest   = "bad_request"
	OutcomeUnauthorized = "unauthorized"
	OutcomeNotFound     = "not_found"
	OutcomeStoreError   = "store_error"
	OutcomeInternal     = "internal"
)

// Виды запроса раскрытия контакта.
const (
	KindByID    = "by_id"
	KindPage    = "page"
	KindUnknown = "unknown"
)

// MetricsPort собирает счетчики по запросам раскрытия контакта.
type MetricsPort interface {
	ObserveReveal(kind, outcome string)
}
