package mail

import "fmt"

const linkEmailTemplate = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
	<h2 style="color: #333;">%[1]s</h2>
	<p style="color: #666; line-height: 1.6;">Click the button below to %[2]s:</p>
	<a href="%[3]s" style="display: inline-block; padding: 12px 24px; margin: 20px 0; background-color: #0070f3; color: white; text-decoration: none; border-radius: 5px;">%[1]s</a>
	<p style="color: #666; font-size: 14px;">Or copy and paste this link in your browser:</p>
	<p style="color: #0070f3; word-break: break-all; font-size: 14px;">%[3]s</p>
	<p style="color: #999; font-size: 12px; margin-top: 30px;">If you didn't request this, please ignore this email.</p>
</div>`

// VerificationBody renders the email carrying a raw verification token link.
func VerificationBody(link string) string {
	return fmt.Sprintf(linkEmailTemplate, "Verify Your Email", "verify your email address", link)
}

// ResetBody renders the email carrying a raw password-reset token link.
func ResetBody(link string) string {
	return fmt.Sprintf(linkEmailTemplate, "Reset Your Password", "reset your password", link)
}
