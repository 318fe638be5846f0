package handler

import (
	"html/template"
	"net/http"

	"algoarena/internal/delivery/http/response"
	"algoarena/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var homeTemplate = template.Must(template.New("home").Parse(`<h1>Welcome to AlgoArena!</h1>
{{range .}}<p><a href="/oauth2/authorization/{{.}}">Login with {{.}}</a></p>
{{end}}<p><a href="/api/users">View All Users</a></p>
`))

// PublicUsersResponse lists every identity on the public listing endpoint.
type PublicUsersResponse struct {
	Count int                    `json:"count"`
	Users []*response.UserDetail `json:"users"`
}

// HomeHandler serves the public landing and status endpoints.
type HomeHandler struct {
	loginUC   usecase.LoginUsecase
	profileUC usecase.ProfileUsecase
}

// NewHomeHandler is the constructor for HomeHandler, injected by Fx.
func NewHomeHandler(loginUC usecase.LoginUsecase, profileUC usecase.ProfileUsecase) *HomeHandler {
	return &HomeHandler{
		loginUC:   loginUC,
		profileUC: profileUC,
	}
}

// Home renders login links for every configured provider.
func (h *HomeHandler) Home(c echo.Context) error {
	providers := h.loginUC.Providers()

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)

	return errors.WithStack(homeTemplate.Execute(c.Response(), providers))
}

// Public is reachable without credentials.
func (h *HomeHandler) Public(c echo.Context) error {
	return c.String(http.StatusOK, "This is a public endpoint - no login required!")
}

// Users lists every identity without requiring credentials.
func (h *HomeHandler) Users(c echo.Context) error {
	identities, err := h.profileUC.ListIdentities(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, PublicUsersResponse{
		Count: len(identities),
		Users: response.NewUserDetails(identities),
	})
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
