package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/teklifgo/server/models"
	"github.com/teklifgo/server/pkg"
	"github.com/teklifgo/server/pkg/email"
	"github.com/teklifgo/server/repository"
	"github.com/teklifgo/server/ws"
)

// ReminderService, teklif hatırlatmaları ve arka plan scheduler'ı.
//
// Scheduler, Start() ile başlatılan tek bir goroutine'dir: her tick'te
// vadesi gelmiş (reminder_date <= now, sent = false) hatırlatmaları
// bulur, sahibine WebSocket bildirimi gönderir, email yapılandırılmışsa
// email atar ve sent işaretler. MarkSent en sonda çağrılır — bildirim
// gönderilemezse hatırlatma bir sonraki tick'te tekrar denenir.
type ReminderService interface {
	Create(ctx context.Context, userID string, req *models.CreateReminderRequest) (*models.Reminder, error)
	List(ctx context.Context, userID string) ([]models.Reminder, error)
	Delete(ctx context.Context, userID, id string) error
	// Send, hatırlatmayı beklemeden hemen gönderir (manuel tetikleme).
	Send(ctx context.Context, userID, id string) (*models.Reminder, error)

	// Start, scheduler goroutine'ini başlatır. Stop, graceful shutdown'da
	// çağrılır ve devam eden tick'in bitmesini bekler.
	Start()
	Stop()
}

type reminderService struct {
	reminderRepo  repository.ReminderRepository
	quotationRepo repository.QuotationRepository
	userRepo      repository.UserRepository
	hub           ws.EventPublisher
	sender        email.EmailSender // nil ise email gönderimi kapalı
	interval      time.Duration

	stop chan struct{}
	wg   sync.WaitGroup
}

// NewReminderService, constructor.
// sender nil olabilir — RESEND_API_KEY tanımlı değilse email atlanır.
func NewReminderService(
	reminderRepo repository.ReminderRepository,
	quotationRepo repository.QuotationRepository,
	userRepo repository.UserRepository,
	hub ws.EventPublisher,
	sender email.EmailSender,
	interval time.Duration,
) ReminderService {
	return &reminderService{
		reminderRepo:  reminderRepo,
		quotationRepo: quotationRepo,
		userRepo:      userRepo,
		hub:           hub,
		sender:        sender,
		interval:      interval,
		stop:          make(chan struct{}),
	}
}

func (s *reminderService) Create(ctx context.Context, userID string, req *models.CreateReminderRequest) (*models.Reminder, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	// Teklif bu kullanıcıya mı ait? Değilse 404.
	if _, err := s.quotationRepo.GetByID(ctx, userID, req.QuotationID); err != nil {
		return nil, err
	}

	reminder := &models.Reminder{
		UserID:       userID,
		QuotationID:  req.QuotationID,
		ReminderDate: req.ReminderDate,
		Message:      req.Message,
	}

	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return nil, err
	}

	// Join'li halini döndür (teklif numarası + müşteri)
	return s.reminderRepo.GetByID(ctx, userID, reminder.ID)
}

func (s *reminderService) List(ctx context.Context, userID string) ([]models.Reminder, error) {
	return s.reminderRepo.ListByUser(ctx, userID)
}

func (s *reminderService) Delete(ctx context.Context, userID, id string) error {
	return s.reminderRepo.Delete(ctx, userID, id)
}

// Send, hatırlatmayı vadesini beklemeden gönderir.
func (s *reminderService) Send(ctx context.Context, userID, id string) (*models.Reminder, error) {
	reminder, err := s.reminderRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if reminder.Sent {
		return nil, fmt.Errorf("%w: reminder already sent", pkg.ErrBadRequest)
	}

	if err := s.deliver(ctx, reminder); err != nil {
		return nil, err
	}

	if err := s.reminderRepo.MarkSent(ctx, userID, id); err != nil {
		return nil, err
	}
	reminder.Sent = true

	return reminder, nil
}

// Start, scheduler goroutine'ini başlatır.
func (s *reminderService) Start() {
	s.wg.Add(1)
	go s.run()
	log.Printf("[reminder] scheduler started (interval: %s)", s.interval)
}

// Stop, scheduler'ı durdurur ve devam eden tick'in bitmesini bekler.
func (s *reminderService) Stop() {
	close(s.stop)
	s.wg.Wait()
	log.Println("[reminder] scheduler stopped")
}

func (s *reminderService) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-s.stop:
			return
		}
	}
}

// tick, vadesi gelen hatırlatmaları işler.
// Hatalar loglanır ama tick'i durdurmaz — bir hatırlatmanın hatası
// diğerlerinin gönderimini engellemez.
func (s *reminderService) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	due, err := s.reminderRepo.ListDue(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("[reminder] failed to list due reminders: %v", err)
		return
	}

	for i := range due {
		reminder := &due[i]
		if err := s.deliver(ctx, reminder); err != nil {
			log.Printf("[reminder] failed to deliver reminder %s: %v", reminder.ID, err)
			continue
		}
		if err := s.reminderRepo.MarkSent(ctx, reminder.UserID, reminder.ID); err != nil {
			log.Printf("[reminder] failed to mark reminder %s sent: %v", reminder.ID, err)
		}
	}
}

// deliver, hatırlatma bildirimini gönderir: önce WebSocket, sonra email.
// WebSocket best-effort'tur (kullanıcı bağlı değilse düşer); email hatası
// error olarak döner ki retry edilebilsin.
func (s *reminderService) deliver(ctx context.Context, reminder *models.Reminder) error {
	quotationNumber := ""
	if reminder.QuotationNumber != nil {
		quotationNumber = *reminder.QuotationNumber
	}
	customerName := ""
	if reminder.Customer != nil {
		customerName = reminder.Customer.Name
	}

	s.hub.BroadcastToUser(reminder.UserID, ws.Event{
		Op: ws.OpReminderDue,
		Data: ws.ReminderDueData{
			ReminderID:      reminder.ID,
			QuotationID:     reminder.QuotationID,
			QuotationNumber: quotationNumber,
			CustomerName:    customerName,
			Message:         reminder.Message,
			ReminderDate:    reminder.ReminderDate.Format(time.RFC3339),
		},
	})

	if s.sender == nil {
		return nil
	}

	user, err := s.userRepo.GetByID(ctx, reminder.UserID)
	if err != nil {
		return err
	}

	return s.sender.SendReminder(ctx, user.Email, quotationNumber, customerName,
		reminder.Message, reminder.ReminderDate)
}
