package registration

import (
	"fmt"
	"strings"
	"time"
)

// User carries the originating Telegram identity attributes needed for the
// admin notification and the durable record.
type User struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// tashkent is the fixed calendar zone used for admin notifications.
var tashkent = loadTashkent()

func loadTashkent() *time.Location {
	loc, err := time.LoadLocation("Asia/Tashkent")
	if err != nil {
		// Tashkent has no DST; UTC+5 is exact.
		return time.FixedZone("Asia/Tashkent", 5*60*60)
	}
	return loc
}

// ReviewText renders the confirmation summary shown before the final confirm.
// The level line appears directly after the course only for has-level courses.
func ReviewText(s *Session) string {
	lines := []string{
		"🧾 *Ma’lumotlarni ko‘rib chiqing:*",
		fmt.Sprintf("• 📚 *Kurs:* %s", s.CourseLabel),
		fmt.Sprintf("• 🗂 *Bo‘lim:* %s", s.SectionLabel),
		fmt.Sprintf("• 👤 *Ism familiya:* %s", s.FullName),
		fmt.Sprintf("• 🎂 *Yosh:* %d", s.Age),
		fmt.Sprintf("• 📱 *Telefon:* %s", s.Phone),
	}
	if CourseHasLevel(s.CourseKey) && s.LevelLabel != "" {
		lines = insertLine(lines, 2, fmt.Sprintf("• 📊 *Daraja:* %s", s.LevelLabel))
	}
	return strings.Join(lines, "\n")
}

// AdminText renders the administrator notification for a confirmed
// registration, stamped in the Asia/Tashkent zone at second precision.
func AdminText(s *Session, u User, now time.Time) string {
	username := "@None"
	if u.Username != "" {
		username = "@" + u.Username
	}

	lines := []string{
		"🔔 *Yangi o‘quvchi ro‘yxatdan o‘tdi*",
		fmt.Sprintf("👤 *Ism:* %s", s.FullName),
		fmt.Sprintf("🎂 *Yosh:* %d", s.Age),
		fmt.Sprintf("📱 *Telefon:* %s", s.Phone),
		fmt.Sprintf("📚 *Kurs:* %s", s.CourseLabel),
		fmt.Sprintf("🗂 *Bo‘lim:* %s", s.SectionLabel),
	}
	if CourseHasLevel(s.CourseKey) && s.LevelLabel != "" {
		lines = append(lines, fmt.Sprintf("📊 *Daraja:* %s", s.LevelLabel))
	}
	lines = append(lines,
		fmt.Sprintf("🆔 *Telegram ID:* %d", u.ID),
		fmt.Sprintf("👤 *Username:* %s", username),
		fmt.Sprintf("📅 *Sana:* %s (Asia/Tashkent)", now.In(tashkent).Format("2006-01-02 15:04:05")),
	)
	return strings.Join(lines, "\n")
}

func insertLine(lines []string, at int, line string) []string {
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, line)
	out = append(out, lines[at:]...)
	return out
}
