// Package ws, WebSocket bağlantı yönetimi ve gerçek zamanlı event dağıtımını sağlar.
//
// Mimari:
// - Hub: Tüm bağlantıları yöneten merkezi yapı
// - Client: Her WebSocket bağlantısını temsil eder
// - Event: Client-server arası iletilen mesaj formatı
//
// Bu uygulamada event'ler her zaman kullanıcıya özeldir (multi-tenant):
// bir kullanıcının teklif/hatırlatma event'i başka kullanıcıya gitmez.
// Aynı hesabın birden fazla tab'ı olabilir — Hub userID başına client
// set'i tutar ve event tüm tab'lara gider.
package ws

// Event, WebSocket üzerinden iletilen bir mesajı temsil eder.
//
// Op: Event türü — "reminder_due", "heartbeat" vb.
// Data: Event'e özgü payload.
// Seq: Outbound event'lere verilen artan sayı — frontend eksik event
// tespiti için takip eder.
type Event struct {
	Op   string `json:"op"`
	Data any    `json:"d,omitempty"`
	Seq  int64  `json:"seq,omitempty"`
}

// Client → Server operasyonları
const (
	OpHeartbeat = "heartbeat" // Client her 30sn'de gönderir
)

// Server → Client operasyonları
const (
	OpReady        = "ready"         // Bağlantı kurulduğunda ilk gönderilen
	OpHeartbeatAck = "heartbeat_ack" // Heartbeat'e yanıt

	OpReminderDue = "reminder_due" // Bir hatırlatmanın vadesi geldi

	// Çoklu tab senkronizasyonu: bir tab'da yapılan değişiklik
	// diğer tab'lara anında yansır.
	OpQuotationCreate = "quotation_create"
	OpQuotationUpdate = "quotation_update"
	OpQuotationDelete = "quotation_delete"
	OpPaymentUpdate   = "payment_update"
)

// ReadyData, ready event'inin payload'ı.
type ReadyData struct {
	UserID string `json:"user_id"`
}

// ReminderDueData, reminder_due event'inin payload'ı.
// Frontend bildirimi göstermek için teklif numarası ve müşteri adını kullanır.
type ReminderDueData struct {
	ReminderID      string `json:"reminder_id"`
	QuotationID     string `json:"quotation_id"`
	QuotationNumber string `json:"quotation_number"`
	CustomerName    string `json:"customer_name"`
	Message         string `json:"message,omitempty"`
	ReminderDate    string `json:"reminder_date"` // RFC3339
}
