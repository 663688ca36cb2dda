package registration

// User-facing texts, Markdown formatted.
const (
	textWelcome = "Assalomu alaykum!\n" +
		"*Welcome to ITeach Academy* 🎓\n\n" +
		"Bizning o‘quv jamoamizga qo‘shilish va ro‘yxatdan o‘tish uchun pastdagi tugmani bosing."

	textChooseCourse = "📚 Qaysi *kurs*da o‘qimoqchisiz?\n" +
		"_Iltimos, quyidagilardan birini tanlang._"

	textChooseLevel   = "📊 Iltimos, *darajangizni* tanlang:"
	textChooseSection = "🗂 Iltimos, *bo‘lim*ni tanlang:"

	textAskName = "✍️ *Iltimos, to‘liq ism-familiyangizni kiriting.*\n" +
		"_Masalan: Alamozon Alovuddinov_"
	textAskAge   = "🎂 *Yoshingizni kiriting:*"
	textAskPhone = "📞 *Telefon raqamingizni kiriting* (format: `+998XXXXXXXXX`) yoki pastdagi tugma orqali yuboring."

	textEditMenu     = "Qaysi *bo‘limni* o‘zgartiramiz?"
	textEditName     = "✍️ Yangi *ism-familiya*ni kiriting:"
	textEditAge      = "🎂 Yangi *yosh*ni kiriting:"
	textEditPhone    = "📞 Yangi *telefon*ni kiriting (format: `+998XXXXXXXXX`) yoki pastdagi tugma orqali yuboring."
	textSendContact  = "Telefonni yuboring:"
	textContactTaken = "✔️ Qabul qilindi."

	textBadName = "❌ To‘liq ism-familiya kiriting.\nMasalan: *Alamozon Alovuddinov*"
	textBadAge  = "❌ Yosh faqat 3–100 oralig‘ida bo‘lishi kerak. Qayta kiriting:"
	textBadPhone = "❌ Noto‘g‘ri format. Iltimos, *+998XXXXXXXXX* shaklida kiriting " +
		"yoki pastdagi tugmadan foydalaning."
	textBadContact = "❌ Telefon raqamingiz *+998XXXXXXXXX* formatida bo‘lishi kerak. Qayta yuboring."

	textBadCourse  = "Noto‘g‘ri kurs tanlandi. Qaytadan urinib ko‘ring."
	textBadLevel   = "Noto‘g‘ri daraja tanlandi. Qaytadan urinib ko‘ring."
	textBadSection = "Noto‘g‘ri bo‘lim tanlandi. Qaytadan urinib ko‘ring."
	textBadAction  = "Noto‘g‘ri amal. Qaytadan urinib ko‘ring."

	textIncomplete = "Ma’lumotlar yetarli emas. Iltimos, qaytadan boshlang: /start"
	textStorageErr = "Server xatosi yuz berdi. Iltimos, birozdan so‘ng qayta urinib ko‘ring."

	textConfirmed = "🎉 *Tabriklaymiz!* Siz ro‘yxatdan o‘tdingiz.\n" +
		"Tez orada siz bilan telefon raqamingiz orqali bog‘lanamiz."

	textCancelledButton  = "❌ Ro‘yxatdan o‘tish bekor qilindi."
	textCancelledCommand = "❌ Jarayon bekor qilindi. Qayta boshlash uchun /start bosing."

	textHint = "Iltimos, /start buyrug‘i bilan boshlang yoki jarayon tugmalaridan foydalaning."
)
