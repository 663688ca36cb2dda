package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/iteachuz/enrollbot/internal/registration"
	tghelpers "github.com/iteachuz/enrollbot/internal/telegram/helpers"
)

// render materializes flow views: edits replace the triggering message,
// everything else goes out as a new message.
func render(c tele.Context, views []registration.View) error {
	for _, v := range views {
		var err error
		if v.Edit {
			err = tghelpers.EditOrSendMD(c, v.Text, v.Markup)
		} else {
			err = tghelpers.SendMD(c, v.Text, v.Markup)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
