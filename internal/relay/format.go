package relay

import "strings"

// NotProvided stands in for an empty phone number in the relayed text.
const NotProvided = "Not provided"

// FormatText renders the payload as the plain text block delivered to the
// messaging channel. Field order is fixed: name, email, phone, subject,
// message.
func FormatText(p MessagePayload) string {
	phone := p.Phone
	if strings.TrimSpace(phone) == "" {
		phone = NotProvided
	}

	var b strings.Builder
	b.WriteString("New message from the website\n\n")
	b.WriteString("Name: " + strings.TrimSpace(p.FirstName+" "+p.LastName) + "\n")
	b.WriteString("Email: " + p.Email + "\n")
	b.WriteString("Phone: " + phone + "\n")
	b.WriteString("Subject: " + p.Subject + "\n\n")
	b.WriteString("Message:\n")
	b.WriteString(p.Message)
	return b.String()
}
