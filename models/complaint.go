package models

import (
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ComplaintStatus enum. Labels are the Arabic strings shown to citizens;
// they are stored verbatim so back-office tooling sees the same values.
type ComplaintStatus string

const (
	StatusInReview ComplaintStatus = "قيد المعالجة"
	StatusResolved ComplaintStatus = "تم الحل"
	StatusRejected ComplaintStatus = "مرفوض"
)

// Governorates is the fixed list of Egyptian governorates a complaint
// can be filed against.
var Governorates = []string{
	"القاهرة",
	"الجيزة",
	"الإسكندرية",
	"الدقهلية",
	"الشرقية",
	"القليوبية",
	"الغربية",
	"المنوفية",
	"البحيرة",
	"كفر الشيخ",
	"دمياط",
	"بورسعيد",
	"الإسماعيلية",
	"السويس",
	"شمال سيناء",
	"جنوب سيناء",
	"بني سويف",
	"الفيوم",
	"المنيا",
	"أسيوط",
	"سوهاج",
	"قنا",
	"الأقصر",
	"أسوان",
	"الوادي الجديد",
	"مطروح",
	"البحر الأحمر",
}

// Ministries is the fixed list of administrations complaints are routed to.
var Ministries = []string{
	"إدارة الكهرباء والطاقة",
	"إدارة الغاز الطبيعي",
	"إدارة الطرق والكباري",
	"إدارة المرور",
	"إدارة النقل والمواصلات العامة",
	"مديرية الصحة",
	"إدارة البيئة ومكافحة التلوث",
	"مديرية التربية والتعليم",
	"مديرية الإسكان والمرافق",
	"إدارة التخطيط العمراني",
	"إدارة الأراضي وأملاك الدولة",
	"مديرية الأمن",
	"إدارة الدفاع المدني والحريق",
	"إدارة التموين والتجارة الداخلية",
	"إدارة حماية المستهلك",
	"إدارة الزراعة",
	"إدارة الري والموارد المائية",
	"إدارة الشباب والرياضة",
	"إدارة الثقافة",
	"إدارة السياحة والآثار",
}

var governorateSet = toSet(Governorates)
var ministrySet = toSet(Ministries)

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

// IsValidGovernorate reports whether g is one of the fixed governorates.
func IsValidGovernorate(g string) bool {
	return governorateSet[g]
}

// IsValidMinistry reports whether m is one of the fixed administrations.
func IsValidMinistry(m string) bool {
	return ministrySet[m]
}

// Complaint represents a citizen complaint as stored in the complaints
// collection.
type Complaint struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ComplaintID string             `bson:"complaintId" json:"complaintId"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Governorate string             `bson:"governorate" json:"governorate"`
	Ministry    string             `bson:"ministry" json:"ministry"`
	Description string             `bson:"description" json:"description"`
	ImageURL    *string            `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	VideoURL    *string            `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Latitude    *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude   *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Status      ComplaintStatus    `bson:"status" json:"status"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// GenerateComplaintID draws the 6-digit tracking id shown to the submitter.
// The draw is unbounded random over 0..999999 with no collision check
// against existing records; two complaints can end up sharing an id.
func GenerateComplaintID() string {
	return fmt.Sprintf("%06d", rand.Intn(1_000_000))
}
