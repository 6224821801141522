package middleware

import (
	"strings"

	"github.com/marcomarassi/note-keeper-service/pkg/code"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// LangWithTranslator selects the validator translator and the error
// message language from the lang query parameter or header.
func LangWithTranslator(uni *ut.UniversalTranslator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if s, exist := c.GetQuery("lang"); exist {
			lang = s
		} else if s := c.GetHeader("lang"); len(s) != 0 {
			lang = s
		}

		lang = strings.ToLower(strings.ReplaceAll(lang, "-", "_"))

		if lang != "" {
			code.SetGlobalDefaultLang(lang)
		}

		trans, found := uni.GetTranslator(lang)
		if !found {
			trans, _ = uni.GetTranslator("it")
		}
		c.Set("trans", trans)

		c.Next()
	}
}
