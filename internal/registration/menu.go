package registration

import (
	tele "gopkg.in/telebot.v4"

	"github.com/iteachuz/enrollbot/internal/telegram/keyboard"
)

// CallbackUnique prefixes every registration callback; the payload after it
// is parsed by ParseEvent.
const CallbackUnique = "reg"

func btn(label, payload string) keyboard.InlineBtn {
	return keyboard.InlineBtn{Text: label, Unique: CallbackUnique, Data: payload}
}

var (
	cancelBtn = btn("❌ Bekor qilish", "cancel")
)

// RegisterMenu is the single-button welcome keyboard.
func RegisterMenu() *tele.ReplyMarkup {
	return keyboard.InlineRows([]keyboard.InlineBtn{btn("🚀 Ro'yxatdan o'tish", "begin")})
}

// CourseMenu lists courses two per row with a trailing cancel row.
func CourseMenu() *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(Courses))
	for _, c := range Courses {
		buttons = append(buttons, btn(c.Label, "course:"+c.Key))
	}
	rows := keyboard.Chunk(buttons, 2)
	rows = append(rows, []keyboard.InlineBtn{cancelBtn})
	return keyboard.InlineRows(rows...)
}

// LevelMenu lists proficiency levels two per row with back and cancel rows.
func LevelMenu() *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(Levels))
	for _, l := range Levels {
		buttons = append(buttons, btn(l.Label, "level:"+l.Key))
	}
	rows := keyboard.Chunk(buttons, 2)
	rows = append(rows,
		[]keyboard.InlineBtn{btn("⬅️ Ortga (Kurslar)", "back:courses")},
		[]keyboard.InlineBtn{cancelBtn},
	)
	return keyboard.InlineRows(rows...)
}

// SectionMenu lists the course's section vocabulary two per row. The back
// target is the level step for has-level courses and the course step
// otherwise; cancel is always present.
func SectionMenu(courseKey string) *tele.ReplyMarkup {
	back := "back:courses"
	if CourseHasLevel(courseKey) {
		back = "back:levels"
	}

	sections := SectionsFor(courseKey)
	buttons := make([]keyboard.InlineBtn, 0, len(sections))
	for _, s := range sections {
		buttons = append(buttons, btn(s.Label, "section:"+s.Key))
	}
	rows := keyboard.Chunk(buttons, 2)
	rows = append(rows,
		[]keyboard.InlineBtn{btn("⬅️ Ortga", back)},
		[]keyboard.InlineBtn{cancelBtn},
	)
	return keyboard.InlineRows(rows...)
}

// ReviewMenu offers confirm/edit plus cancel.
func ReviewMenu() *tele.ReplyMarkup {
	return keyboard.InlineRows(
		[]keyboard.InlineBtn{
			btn("✅ Tasdiqlash", "confirm"),
			btn("✏️ O‘zgartirish", "edit"),
		},
		[]keyboard.InlineBtn{cancelBtn},
	)
}

// EditMenu lists the editable fields; the level entry appears only for
// has-level courses.
func EditMenu(courseKey string) *tele.ReplyMarkup {
	rows := [][]keyboard.InlineBtn{
		{btn("📚 Kurs", "edit:course"), btn("🗂 Bo‘lim", "edit:section")},
		{btn("👤 Ism familiya", "edit:name"), btn("🎂 Yosh", "edit:age")},
		{btn("📱 Telefon", "edit:phone")},
	}
	if CourseHasLevel(courseKey) {
		rows = append(rows[:1], append([][]keyboard.InlineBtn{{btn("📊 Daraja", "edit:level")}}, rows[1:]...)...)
	}
	rows = append(rows,
		[]keyboard.InlineBtn{btn("⬅️ Ortga (Ko‘rib chiqish)", "back:review")},
		[]keyboard.InlineBtn{cancelBtn},
	)
	return keyboard.InlineRows(rows...)
}

// ContactKeyboard asks the user to share their phone number.
func ContactKeyboard() *tele.ReplyMarkup {
	return keyboard.RequestContact("📱 Raqamni ulashish")
}
