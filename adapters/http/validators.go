package http

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/khoahotran/cardlink/internal/domain/account"
)

var registerOnce sync.Once

// RegisterValidators adds the link_type and theme tags to gin's validator.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			panic("gin binding engine is not go-playground/validator")
		}
		rules := map[string]validator.Func{
			"link_type": func(fl validator.FieldLevel) bool {
				return account.LinkType(fl.Field().String()).Valid()
			},
			"theme": func(fl validator.FieldLevel) bool {
				return account.Theme(fl.Field().String()).Valid()
			},
		}
		for tag, fn := range rules {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("cannot register %q validator: %v", tag, err))
			}
		}
	})
}
