package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhufei/sports-backend/internal/model"
)

func dateOffset(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func validBooking() *model.CreateBookingRequest {
	return &model.CreateBookingRequest{
		Name:        "张三",
		Phone:       "13812345678",
		CourseID:    1,
		BookingDate: dateOffset(1),
		BookingTime: "09:00-10:00",
	}
}

func TestValidateBookingValid(t *testing.T) {
	ok, errs := ValidateBooking(validBooking())
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestValidateBookingTodayIsAllowed(t *testing.T) {
	req := validBooking()
	req.BookingDate = dateOffset(0)

	ok, errs := ValidateBooking(req)
	assert.True(t, ok, "errors: %v", errs)
}

func TestValidateBookingYesterdayRejected(t *testing.T) {
	req := validBooking()
	req.BookingDate = dateOffset(-1)

	ok, errs := ValidateBooking(req)
	assert.False(t, ok)
	assert.Contains(t, errs, "预约日期不能是过去的日期")
}

func TestValidateBookingAccumulatesAllErrors(t *testing.T) {
	ok, errs := ValidateBooking(&model.CreateBookingRequest{})
	require.False(t, ok)

	// One message per missing field, in declaration order.
	assert.Equal(t, []string{
		"姓名不能为空",
		"联系电话不能为空",
		"请选择课程",
		"请选择预约日期",
		"请选择预约时间",
	}, errs)
}

func TestValidateBookingBlankName(t *testing.T) {
	req := validBooking()
	req.Name = "   "

	ok, errs := ValidateBooking(req)
	assert.False(t, ok)
	assert.Equal(t, []string{"姓名不能为空"}, errs)
}

func TestValidateBookingPhoneFormats(t *testing.T) {
	cases := []struct {
		phone string
		valid bool
	}{
		{"13812345678", true},
		{"19912345678", true},
		{"12345678901", false}, // second digit out of range
		{"1381234567", false},  // 10 digits
		{"138123456789", false},
		{"23812345678", false},
		{"1381234567a", false},
	}

	for _, tc := range cases {
		req := validBooking()
		req.Phone = tc.phone

		ok, errs := ValidateBooking(req)
		if tc.valid {
			assert.True(t, ok, "phone %q should be valid, errors: %v", tc.phone, errs)
		} else {
			assert.False(t, ok, "phone %q should be invalid", tc.phone)
			assert.Equal(t, []string{"请输入有效的手机号码"}, errs)
		}
	}
}

func TestValidateBookingBlankPhoneReportsRequiredOnly(t *testing.T) {
	req := validBooking()
	req.Phone = ""

	ok, errs := ValidateBooking(req)
	assert.False(t, ok)
	assert.Equal(t, []string{"联系电话不能为空"}, errs)
}

func TestValidateBookingUnparseableDateRejected(t *testing.T) {
	req := validBooking()
	req.BookingDate = "not-a-date"

	ok, _ := ValidateBooking(req)
	assert.False(t, ok)
}

func TestValidateLogin(t *testing.T) {
	ok, errs := ValidateLogin(&model.LoginRequest{Username: "admin", Password: "secret"})
	assert.True(t, ok)
	assert.Empty(t, errs)

	ok, errs = ValidateLogin(&model.LoginRequest{})
	assert.False(t, ok)
	assert.Equal(t, []string{"用户名不能为空", "密码不能为空"}, errs)

	ok, errs = ValidateLogin(&model.LoginRequest{Username: "  ", Password: "x"})
	assert.False(t, ok)
	assert.Equal(t, []string{"用户名不能为空"}, errs)
}
