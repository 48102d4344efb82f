package mail

import (
	"fmt"

	"growlife/models"
)

// Subjects and bodies for every transactional email the system sends.
// Bodies are plain HTML strings; nothing here is user-configurable.

// OTPEmail carries the login verification code.
func OTPEmail(otp string) (subject, html string) {
	subject = "🔐 Secure Login OTP - GrowLife"
	html = fmt.Sprintf(`<div>
  <h2>GrowLife Login Verification</h2>
  <p>Use the OTP below to complete your login:</p>
  <h3>%s</h3>
  <p>This code is valid for <strong>10 minutes</strong>.</p>
</div>`, otp)
	return subject, html
}

// WelcomeEmail greets a freshly registered account.
func WelcomeEmail(username string) (subject, html string) {
	subject = "Welcome to GrowLife Insurance 🎉"
	html = fmt.Sprintf(`<h2>Dear %s,</h2>
<p>Congratulations! Your signup was successful.</p>
<p>We're thrilled to have you onboard.</p>
<p><strong>Stay insured, stay secure!</strong></p>`, username)
	return subject, html
}

// ClaimSubmittedEmail confirms a filed claim and hands out the claim id.
func ClaimSubmittedEmail(username, policyNumber, claimID string) (subject, html string) {
	subject = "Your Claim Has Been Submitted Successfully!"
	html = fmt.Sprintf(`<div>
  <h2>Claim Submission Confirmation</h2>
  <p>Dear <strong>%s</strong>,</p>
  <p>Your claim for policy number <strong>%s</strong> has been successfully submitted.</p>
  <p>Your unique Claim ID is: <strong>%s</strong>.</p>
  <p>Please use this ID for all future correspondence regarding this claim.</p>
  <p>Our team will review your submission shortly. You will be notified of any status changes.</p>
  <p>Sincerely,<br>The Insurance Team</p>
  <p>This is an automated email, please do not reply.</p>
</div>`, username, policyNumber, claimID)
	return subject, html
}

// ClaimStatusEmail notifies the holder of a claim status change.
func ClaimStatusEmail(username, claimID, policyNumber, oldStatus, newStatus string) (subject, html string) {
	subject = fmt.Sprintf("Update on Your Claim %s: Status Changed to %s", claimID, newStatus)
	html = fmt.Sprintf(`<div>
  <h2>Your Claim Status Has Been Updated</h2>
  <p>Dear <strong>%s</strong>,</p>
  <p>This is an update regarding your claim with ID: <strong>%s</strong> for policy number <strong>%s</strong>.</p>
  <p>The status of your claim has been changed from <strong>%s</strong> to <strong>%s</strong>.</p>
  <p>Please log in to your account for more details regarding this status change.</p>
  <p>Sincerely,<br>The Insurance Team</p>
  <p>This is an automated email, please do not reply.</p>
</div>`, username, claimID, policyNumber, oldStatus, newStatus)
	return subject, html
}

// PurchaseEmail confirms a policy purchase.
func PurchaseEmail(username string, policy *models.Policy) (subject, html string) {
	subject = fmt.Sprintf("Congratulations! Your Policy Purchase Confirmation - %s", policy.PolicyName)
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>We're excited to confirm your recent policy purchase!</p>
<p>You have successfully purchased the policy: <strong>"%s"</strong> (ID: %s).</p>
<p><strong>Policy Details:</strong></p>
<ul>
  <li><strong>Policy Name:</strong> %s</li>
  <li><strong>Description:</strong> %s</li>
  <li><strong>Premium:</strong> %s</li>
  <li><strong>Valid Until:</strong> %s</li>
  <li><strong>Policy ID:</strong> %s</li>
</ul>
<p>Thank you for choosing us for your insurance needs.</p>
<p>Sincerely,<br>The Insurance Team</p>`,
		username, policy.PolicyName, policy.DisplayID,
		policy.PolicyName, policy.PolicyDescription, policy.Premium,
		policy.ValidUntil.Format("02/01/2006"), policy.DisplayID)
	return subject, html
}

// ExpirationEmail reminds the holder that a policy is about to lapse.
func ExpirationEmail(username string, policy *models.Policy, daysLeft int) (subject, html string) {
	subject = fmt.Sprintf("Reminder: Your Policy %q is Expiring Soon!", policy.PolicyName)
	day := "days"
	if daysLeft == 1 {
		day = "day"
	}
	html = fmt.Sprintf(`<p>Dear %s,</p>
<p>Your policy <strong>"%s"</strong> (ID: %s) is expiring in %d %s. Its validity ends on %s.</p>
<p>Please consider renewing your policy to ensure continuous coverage and avoid any lapse in your benefits.</p>
<p>If you have already renewed or have any questions, please feel free to contact us.</p>
<p>Sincerely,<br>The Insurance Team</p>`,
		username, policy.PolicyName, policy.DisplayID, daysLeft, day,
		policy.ValidUntil.Format("02/01/2006"))
	return subject, html
}
