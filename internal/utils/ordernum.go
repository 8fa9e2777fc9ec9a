package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber returns a client-side order token. The timestamp
// part keeps tokens sortable and human-readable; the uuid fragment guards
// against same-second collisions.
func GenerateOrderNumber() string {
	now := time.Now().UTC()

	datePart := now.Format("20060102-150405")
	suffix := strings.Split(uuid.NewString(), "-")[0]

	return fmt.Sprintf("ORD-%s-%s", datePart, suffix)
}
