package shell

import (
	"strings"

	"github.com/ziadkadry99/siteshell/internal/relay"
	"github.com/ziadkadry99/siteshell/internal/submission"
)

// missing returns the required fields that are blank in p.
func missing(p relay.MessagePayload, required []submission.Field) []submission.Field {
	var out []submission.Field
	for _, f := range required {
		if strings.TrimSpace(fieldValue(p, f)) == "" {
			out = append(out, f)
		}
	}
	return out
}

func fieldValue(p relay.MessagePayload, f submission.Field) string {
	switch f {
	case submission.FieldFirstName:
		return p.FirstName
	case submission.FieldLastName:
		return p.LastName
	case submission.FieldEmail:
		return p.Email
	case submission.FieldPhone:
		return p.Phone
	case submission.FieldSubject:
		return p.Subject
	case submission.FieldMessage:
		return p.Message
	}
	return ""
}
