// Package web holds the embedded templates and stylesheet and renders pages
// inside the shared layout.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/localwork/marketplace/internal/config"
	"github.com/localwork/marketplace/internal/identity"
	"github.com/localwork/marketplace/internal/view"
)

const Layout = "layouts/main"

//go:embed templates static
var files embed.FS

// NewEngine loads the templates from the embedded tree, named by their path
// without extension ("pages/home", "partials/header").
func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(sub("templates")), ".html")
	engine.AddFunc("date", view.Date)
	engine.AddFunc("datetime", view.DateTime)
	engine.AddFunc("monthyear", view.MonthYear)
	engine.AddFunc("rate", view.Rate)
	engine.AddFunc("badge", view.StatusBadge)
	engine.AddFunc("inc", func(i int) int { return i + 1 })
	engine.AddFunc("shortid", func(v any) string {
		return view.ShortID(fmt.Sprint(v))
	})
	return engine
}

// Static is the stylesheet tree served under /static.
func Static() http.FileSystem {
	return http.FS(sub("static"))
}

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return f
}

// Render writes page inside the layout. The shell data (navigation, identity)
// is added here so handlers only bind what their page needs.
func Render(c *fiber.Ctx, status int, page string, bind fiber.Map) error {
	st := identity.FromCtx(c)
	data := fiber.Map{
		"AppName":  config.LoadAppConfig().Name,
		"Nav":      view.NavLinks(c.Path()),
		"Identity": st,
		"Member":   st.Member(),
		"Path":     c.Path(),
		"Year":     time.Now().Year(),
	}
	for k, v := range bind {
		data[k] = v
	}
	return c.Status(status).Render(page, data, Layout)
}
