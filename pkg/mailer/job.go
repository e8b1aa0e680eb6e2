package mailer

// Job kinds carried over the email queue.
const (
	JobVerifyAccount = "verify_account"
	JobResetPassword = "reset_password"
	JobAdminMessage  = "admin_message"
)

// EmailJob is the payload published to RabbitMQ and consumed by the email worker.
type EmailJob struct {
	Kind      string `json:"kind"`
	To        string `json:"to"`
	Name      string `json:"name"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message,omitempty"`
	ActionURL string `json:"action_url,omitempty"`
}
