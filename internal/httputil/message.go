package httputil

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// Japanese is the default, it is the language of the app.
var supported = []language.Tag{
	language.Japanese,
	language.English,
}

var matcher = language.NewMatcher(supported)

type translation struct {
	pattern *regexp.Regexp
	ja      string
	en      string
}

// Messages from the identity provider and the budget status are
// translated. Templates can use the capture groups of the pattern.
var translations = []translation{
	{regexp.MustCompile(`Invalid login credentials`), "メールアドレスまたはパスワードが正しくありません", "The email address or password is incorrect"},
	{regexp.MustCompile(`User already registered`), "このメールアドレスは既に登録されています", "This email address is already registered"},
	{regexp.MustCompile(`Email not confirmed`), "メールアドレスの確認が完了していません", "The email address has not been confirmed yet"},
	{regexp.MustCompile(`Password should be at least (\d+) characters`), "パスワードは${1}文字以上で入力してください", "The password must be at least ${1} characters long"},
	{regexp.MustCompile(`(?i)rate limit`), "しばらく時間をおいてから再度お試しください", "Too many requests, please try again later"},
	{regexp.MustCompile(`予算が設定されていません`), "予算が設定されていません", "No budget has been set"},
	{regexp.MustCompile(`予算に余裕があります`), "予算に余裕があります", "You are well within your budget"},
	{regexp.MustCompile(`使いすぎに注意しましょう`), "使いすぎに注意しましょう", "Watch your spending"},
	{regexp.MustCompile(`予算の上限が近づいています`), "予算の上限が近づいています", "You are close to your budget limit"},
	{regexp.MustCompile(`予算を(\d+)円超過しています`), "予算を${1}円超過しています", "You are ¥${1} over budget"},
}

// Language returns the supported language that matches an
// Accept-Language header value best. Languages that only match with
// low confidence, e.g. French to English, get the default.
func Language(acceptLanguage string) language.Tag {
	tags, _, _ := language.ParseAcceptLanguage(acceptLanguage)
	_, idx, conf := matcher.Match(tags...)
	if conf < language.High {
		return supported[0]
	}

	return supported[idx]
}

// RequestLanguage returns the language for a request.
func RequestLanguage(c *gin.Context) language.Tag {
	return Language(c.GetHeader("Accept-Language"))
}

// Translate returns the message in the given language.
// Unknown messages are returned unchanged.
func Translate(message string, tag language.Tag) string {
	for _, t := range translations {
		match := t.pattern.FindStringSubmatchIndex(message)
		if match == nil {
			continue
		}

		template := t.en
		if tag == language.Japanese {
			template = t.ja
		}

		return string(t.pattern.ExpandString(nil, template, message, match))
	}

	return message
}

// UserMessage returns the message for an error to show to users.
func UserMessage(err error, acceptLanguage string) string {
	if err == nil {
		return ""
	}

	return Translate(err.Error(), Language(acceptLanguage))
}
