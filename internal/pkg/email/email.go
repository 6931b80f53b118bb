package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/arjun/hostelmate/internal/pkg/apperrors"
)

// EmailService defines the interface for email operations
type EmailService interface {
	SendVerificationEmail(toEmail, toName, code string) error
	SendPasswordResetEmail(toEmail, toName, resetURL string) error
	SendWelcomeEmail(toEmail, toName string) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
	BaseURL   string // Base URL for the application
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

// SendVerificationEmail sends the 6-digit activation code. The code expires
// after a short window, so the message says so explicitly.
func (s *EmailServiceImpl) SendVerificationEmail(toEmail, toName, code string) error {
	// Without SMTP credentials the code is logged instead of sent (development only)
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("code", code).
			Msg("SMTP credentials not configured - verification email not sent. Use the code above for testing.")
		return nil
	}

	subject := "Verify Your Email Address - HostelMate"

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Welcome to HostelMate!</h2>
				<p>Hello %s,</p>
				<p>Thank you for registering with HostelMate. Your verification code is:</p>

				<div style="text-align: center; margin: 30px 0;">
					<span style="font-size: 28px; letter-spacing: 6px; font-weight: bold;">%s</span>
				</div>

				<p>This code will expire in 15 minutes. Please use it to activate your account.</p>

				<p>If you did not register for a HostelMate account, please ignore this email.</p>

				<p>Best regards,<br>The HostelMate Team</p>
			</div>
		</body>
		</html>
	`, toName, code)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendPasswordResetEmail sends a single-use password reset link.
func (s *EmailServiceImpl) SendPasswordResetEmail(toEmail, toName, resetURL string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("resetURL", resetURL).
			Msg("SMTP credentials not configured - password reset email not sent. Use the link above for testing.")
		return nil
	}

	subject := "Reset Your Password - HostelMate"

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Password Reset Request</h2>
				<p>Hello %s,</p>
				<p>We received a request to reset the password of your HostelMate account. Click the button below to choose a new password:</p>

				<div style="text-align: center; margin: 30px 0;">
					<a href="%s" style="background-color: #4a86e8; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: bold;">Reset Password</a>
				</div>

				<p>This link can be used once and expires in one hour.</p>

				<p>If you did not request a password reset, you can safely ignore this email.</p>

				<p>Best regards,<br>The HostelMate Team</p>
			</div>
		</body>
		</html>
	`, toName, resetURL)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// SendWelcomeEmail sends a welcome email to a newly verified user
func (s *EmailServiceImpl) SendWelcomeEmail(toEmail, toName string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("toName", toName).
			Msg("SMTP credentials not configured - welcome email not sent.")
		return nil
	}

	subject := "Welcome to HostelMate - Your Account is Active"

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Welcome to HostelMate!</h2>
				<p>Hello %s,</p>
				<p>Your email has been verified and your account is now active. You can now log in and apply for hostel accommodation.</p>

				<p>Thank you for joining!</p>

				<p>Best regards,<br>The HostelMate Team</p>
			</div>
		</body>
		</html>
	`, toName)

	return s.sendHTMLEmail(toEmail, subject, body)
}

// sendHTMLEmail sends an HTML email. A transport or authentication failure is
// wrapped in apperrors.ErrEmailSendFailed so callers can surface it as a
// dependency failure distinct from their own success.
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if s.config.UseTLS {
		tlsConfig := &tls.Config{
			ServerName: s.config.Host,
		}

		conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
		if err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
			return fmt.Errorf("%w: %v", apperrors.ErrEmailSendFailed, err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to create SMTP client")
			return fmt.Errorf("%w: %v", apperrors.ErrEmailSendFailed, err)
		}
		defer client.Quit()

		if err = client.Auth(auth); err != nil {
			s.logger.Error().Err(err).Msg("SMTP authentication failed")
			return fmt.Errorf("%w: %v", apperrors.ErrEmailSendFailed, err)
		}

		if err = client.Mail(s.config.FromEmail); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrEmailSendFailed, err)
		}
		if err = client.Rcpt(toEmail); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrEmailSendFailed, err)
		}

		writer, err := client.Data()
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrEmailSendFailed, err)
		}
		if _, err = writer.Write([]byte(message)); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrEmailSendFailed, err)
		}
		if err = writer.Close(); err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrEmailSendFailed, err)
		}

		return nil
	}

	err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, []byte(message))
	if err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("%w: %v", apperrors.ErrEmailSendFailed, err)
	}

	return nil
}
