package service

import (
	"Community_Hub/internal/pkg"
	"Community_Hub/internal/repository/redis"
)

type EmailService struct {
	emailCfg pkg.SMTPConfig
	codes    *redis.ResetCodeRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, codes: &redis.ResetCodeRepository{}}
}

// SendResetCode writes the code as pending, mails it in the user's
// language, then promotes it to confirmed; a failed send leaves no
// verifiable code behind.
func (s *EmailService) SendResetCode(email, lang string) error {
	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}
	if err = s.codes.PutPending(email, code); err != nil {
		return err
	}

	subject := "Código de restablecimiento"
	if lang == "fr" {
		subject = "Code de réinitialisation"
	}
	html := pkg.EmailCodeHTML(lang, code, redis.DefaultResetCodeTTL)
	if err = pkg.SendEmail(s.emailCfg, email, subject, html); err != nil {
		return err
	}

	if err = s.codes.Confirm(email); err != nil {
		_ = s.codes.DeletePending(email)
		return err
	}
	return nil
}

// VerifyResetCode checks the confirmed code and burns it on success.
func (s *EmailService) VerifyResetCode(email, code string) (bool, error) {
	val, err := s.codes.GetConfirmed(email)
	if err != nil {
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err = s.codes.DeleteConfirmed(email); err != nil {
		return false, err
	}
	return true, nil
}
