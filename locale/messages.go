// Package locale holds the fixed Arabic strings surfaced to citizens.
// The application is Arabic-only, so messages are constants rather than a
// translation catalog.
package locale

// Auth messages.
const (
	MsgUserNotFound       = "لم يتم العثور على هذا المستخدم"
	MsgWrongPassword      = "كلمة المرور غير صحيحة"
	MsgInvalidEmail       = "البريد الإلكتروني غير صالح"
	MsgEmailInUse         = "البريد الإلكتروني مستخدم بالفعل"
	MsgWeakPassword       = "كلمة المرور ضعيفة جداً"
	MsgInvalidCredentials = "البريد الإلكتروني أو كلمة المرور غير صحيحة"
	MsgSignupFailed       = "حدث خطأ أثناء إنشاء الحساب. يرجى المحاولة مرة أخرى."
)

// Profile field validation messages.
const (
	MsgNameRequired      = "الاسم مطلوب"
	MsgNameTooShort      = "يجب أن يكون الاسم 3 أحرف على الأقل"
	MsgNationalIDMissing = "الرقم القومي مطلوب"
	MsgNationalIDInvalid = "يجب أن يتكون الرقم القومي من 14 رقمًا"
	MsgPhoneMissing      = "رقم الهاتف مطلوب"
	MsgPhoneInvalid      = "رقم هاتف غير صالح"
	MsgEmailRequired     = "البريد الإلكتروني مطلوب"
	MsgPasswordRequired  = "كلمة المرور مطلوبة"
)

// Complaint form validation messages.
const (
	MsgGovernorateRequired = "المحافظة مطلوبة"
	MsgGovernorateInvalid  = "المحافظة غير معروفة"
	MsgMinistryRequired    = "الوزارة مطلوبة"
	MsgMinistryInvalid     = "الإدارة غير معروفة"
	MsgDescriptionRequired = "ادخال الوصف مطلوب"
	MsgDescriptionTooShort = "يجب أن يكون وصف الشكوى 20 حرفًا على الأقل"
	MsgLocationRequired    = "الموقع مطلوب"
)

// Media and submission messages.
const (
	MsgImageUploadFailed  = "فشل في رفع الصورة. يرجى المحاولة مرة أخرى."
	MsgVideoUploadFailed  = "فشل في رفع الفيديو. يرجى المحاولة مرة أخرى."
	MsgImageTooLarge      = "حجم الصورة يجب أن يكون أقل من 5 ميجابايت"
	MsgImageEmpty         = "ملف الصورة فارغ"
	MsgVideoTooLarge      = "حجم الفيديو يجب أن يكون أقل من 20 ميجابايت"
	MsgStorageUnreachable = "مشكلة في إعدادات التخزين. يرجى التحقق من إعدادات CORS."
	MsgSubmitFailed       = "حدث خطأ أثناء إرسال الشكوى. يرجى المحاولة مرة أخرى."
	MsgHistoryLoadFailed  = "فشل في تحميل سجل الشكاوي"
	MsgSubmitOK           = "تم إرسال الشكوى بنجاح"
)

// StatusColor returns the badge color the client renders for a complaint
// status label. Unknown labels fall back to gray.
func StatusColor(status string) string {
	switch status {
	case "قيد المعالجة":
		return "#F59E0B"
	case "تم الحل":
		return "#10B981"
	case "مرفوض":
		return "#EF4444"
	default:
		return "#6B7280"
	}
}
