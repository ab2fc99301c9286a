package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

// ContactService throttles public contact submissions and enqueues the
// admin notification plus the auto-reply for asynchronous delivery.
type ContactService struct {
	queue   ports.MailQueue
	limiter ports.ContactLimiter
	// recipient is the admin inbox; empty means mail delivery is not
	// configured and submissions are rejected.
	recipient string
	log       zerolog.Logger
}

func NewContactService(queue ports.MailQueue, limiter ports.ContactLimiter, recipient string, log zerolog.Logger) *ContactService {
	return &ContactService{queue: queue, limiter: limiter, recipient: recipient, log: log}
}

// Submit processes one contact form. Honeypot hits return success without
// side effects so bots cannot tell they were caught.
func (s *ContactService) Submit(ctx context.Context, sub domain.ContactSubmission, clientIP string) error {
	if strings.TrimSpace(sub.Website) != "" {
		s.log.Info().Str("ip", clientIP).Msg("contact honeypot triggered")
		return nil
	}

	if s.recipient == "" {
		return domain.ErrMailNotConfigured
	}

	allowed, err := s.limiter.Allow(ctx, clientIP)
	if err != nil {
		// a broken limiter must not take the contact form down
		s.log.Warn().Err(err).Msg("contact limiter unavailable, allowing request")
		allowed = true
	}
	if !allowed {
		return domain.ErrRateLimited
	}

	notification := domain.MailMessage{
		To:      s.recipient,
		Subject: fmt.Sprintf("[YOTTA LAB 문의] %s - %s", sub.Company, sub.Name),
		Body:    adminMailBody(sub),
	}
	reply := domain.MailMessage{
		To:      sub.Email,
		Subject: "[YOTTA LAB] 문의 접수 확인",
		Body:    replyMailBody(sub.Name),
	}

	if err := s.queue.Enqueue(notification); err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}
	if err := s.queue.Enqueue(reply); err != nil {
		return fmt.Errorf("enqueue auto-reply: %w", err)
	}

	s.log.Info().Str("company", sub.Company).Str("ip", clientIP).Msg("contact submission queued")
	return nil
}

func adminMailBody(sub domain.ContactSubmission) string {
	var extra []string
	optional := []struct{ label, value string }{
		{"회사 소재지", sub.Location},
		{"연매출", sub.Revenue},
		{"임직원수", sub.Employees},
		{"업종", sub.Industry},
		{"업력", sub.Years},
		{"관심분야", sub.Interest},
		{"회사 홈페이지 주소", sub.CompanyURL},
	}
	for _, field := range optional {
		if v := strings.TrimSpace(field.value); v != "" {
			extra = append(extra, field.label+": "+v)
		}
	}
	extraStr := "(미선택)"
	if len(extra) > 0 {
		extraStr = strings.Join(extra, "\n")
	}

	return fmt.Sprintf(`YOTTA LAB 웹사이트 문의가 접수되었습니다.

기업명: %s
담당자: %s
이메일: %s
연락처: %s

문의 내용:
%s

[추가 정보] (선택 항목)
%s

---
본 메일은 YOTTA LAB 홈페이지 Contact 폼에서 자동 전송되었습니다.
`, sub.Company, sub.Name, sub.Email, sub.Phone, sub.Message, extraStr)
}

func replyMailBody(name string) string {
	return fmt.Sprintf(`안녕하세요, %s님.

YOTTA LAB 홈페이지를 이용해 주셔서 감사합니다.

문의하신 내용을 잘 받았습니다.
확인 후 빠른 시일 내에 연락드리겠습니다.

감사합니다.
YOTTA LAB
`, name)
}
