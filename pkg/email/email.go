// Package email, uygulama genelinde email gönderimi için soyutlama katmanı sağlar.
//
// EmailSender interface'i ile gönderim detayları soyutlanır; şu anki
// implementasyon Resend API kullanır. RESEND_API_KEY tanımlı değilse
// email özelliği kapalıdır: scheduler nil sender ile çalışır ve sadece
// websocket bildirimi gönderir.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/resend/resend-go/v3"
)

// EmailSender, email gönderimi için interface.
// Service katmanı bu interface'e bağımlıdır, concrete Resend implementasyonuna değil.
type EmailSender interface {
	// SendReminder, kullanıcıya vadesi gelen teklif hatırlatması gönderir.
	// quotationNumber teklifin görünen numarası, customerName müşteri adı,
	// dueDate hatırlatmanın planlandığı tarihtir.
	SendReminder(ctx context.Context, toEmail, quotationNumber, customerName, message string, dueDate time.Time) error
}

// resendSender, Resend API ile email gönderen EmailSender implementasyonu.
type resendSender struct {
	client    *resend.Client
	fromEmail string // Gönderici adresi (ör: noreply@teklifgo.app)
}

// NewResendSender, Resend API client'ı ile yeni bir EmailSender oluşturur.
//
// apiKey: Resend dashboard'dan alınan API key (re_xxxxxxxx formatında).
// fromEmail: Gönderici email adresi — Resend'de doğrulanmış domain altında olmalı.
func NewResendSender(apiKey, fromEmail string) EmailSender {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

// SendReminder, hatırlatma email'i gönderir.
//
// İçerik Türkçe'dir: uygulamanın kullanıcıları Türk KOBİ'leri, teklif
// numarası ve müşteri adıyla kısa bir takip hatırlatması yeterli.
func (s *resendSender) SendReminder(ctx context.Context, toEmail, quotationNumber, customerName, message string, dueDate time.Time) error {
	subject := fmt.Sprintf("Teklif Hatırlatması — %s", quotationNumber)

	note := ""
	if message != "" {
		note = fmt.Sprintf(`<p style="color:#94a3b8;font-size:15px;line-height:1.6;margin:0 0 24px 0;">Notunuz: %s</p>`, message)
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#f1f5f9;font-family:Arial,Helvetica,sans-serif;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f1f5f9;padding:40px 0;">
    <tr>
      <td align="center">
        <table width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:40px;">
          <tr>
            <td>
              <h1 style="color:#0f172a;font-size:24px;margin:0 0 8px 0;">TeklifGo</h1>
              <h2 style="color:#0f172a;font-size:18px;margin:0 0 24px 0;">Teklif Takip Hatırlatması</h2>
              <p style="color:#475569;font-size:15px;line-height:1.6;margin:0 0 24px 0;">
                <strong>%s</strong> numaralı teklifiniz için takip zamanı geldi.<br>
                Müşteri: <strong>%s</strong><br>
                Hatırlatma tarihi: %s
              </p>
              %s
              <p style="color:#64748b;font-size:13px;line-height:1.6;margin:0;">
                Bu hatırlatmayı TeklifGo üzerinden siz oluşturdunuz.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, quotationNumber, customerName, dueDate.Format("02.01.2006"), note)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("TeklifGo <%s>", s.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send reminder email: %w", err)
	}

	return nil
}
