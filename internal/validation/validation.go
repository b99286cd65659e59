// Package validation implements the business-rule checks for incoming
// booking and login payloads. Checks never fail fast: every violated rule
// appends its message, so a single call reports the complete problem set.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	govalidator "github.com/go-playground/validator/v10"

	"github.com/zhufei/sports-backend/internal/model"
)

var (
	validate      = govalidator.New()
	mobilePattern = regexp.MustCompile(`^1[3-9]\d{9}$`)
)

func init() {
	// Report errors under JSON field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("notblank", func(fl govalidator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// Mainland mobile number: 11 digits, leading 1, second digit 3-9.
	_ = validate.RegisterValidation("cnmobile", func(fl govalidator.FieldLevel) bool {
		return mobilePattern.MatchString(fl.Field().String())
	})

	// Booking date must parse as YYYY-MM-DD and be today or later.
	// Time of day is ignored; "today" is the server-local calendar day.
	_ = validate.RegisterValidation("futuredate", func(fl govalidator.FieldLevel) bool {
		d, err := time.ParseInLocation("2006-01-02", fl.Field().String(), time.Local)
		if err != nil {
			return false
		}
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		return !d.Before(today)
	})
}

// rule maps a (field, tag) violation to its user-facing message.
// Order here defines the order messages are reported in.
type rule struct {
	field string
	tag   string
	msg   string
}

var bookingRules = []rule{
	{"name", "notblank", "姓名不能为空"},
	{"phone", "notblank", "联系电话不能为空"},
	{"phone", "cnmobile", "请输入有效的手机号码"},
	{"course_id", "required", "请选择课程"},
	{"booking_date", "required", "请选择预约日期"},
	{"booking_date", "futuredate", "预约日期不能是过去的日期"},
	{"booking_time", "required", "请选择预约时间"},
}

var loginRules = []rule{
	{"username", "notblank", "用户名不能为空"},
	{"password", "notblank", "密码不能为空"},
}

// ValidateBooking checks a booking payload against all business rules.
// Returns true and an empty slice when the payload is valid.
func ValidateBooking(req *model.CreateBookingRequest) (bool, []string) {
	return run(req, bookingRules)
}

// ValidateLogin checks admin login credentials for presence.
func ValidateLogin(req *model.LoginRequest) (bool, []string) {
	return run(req, loginRules)
}

func run(payload interface{}, rules []rule) (bool, []string) {
	errs := []string{}

	err := validate.Struct(payload)
	if err == nil {
		return true, errs
	}

	ve, ok := err.(govalidator.ValidationErrors)
	if !ok {
		return false, append(errs, "无效的请求数据")
	}

	failed := make(map[string]struct{}, len(ve))
	for _, fe := range ve {
		failed[fe.Field()+"."+fe.Tag()] = struct{}{}
	}

	for _, r := range rules {
		if _, hit := failed[r.field+"."+r.tag]; hit {
			errs = append(errs, r.msg)
		}
	}

	return len(errs) == 0, errs
}
