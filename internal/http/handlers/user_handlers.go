package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/http/middleware"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/validation"
	"github.com/robertnguyen279/son-phuong-nam-backend/pkg/pagination"
	"github.com/robertnguyen279/son-phuong-nam-backend/pkg/response"
)

// Whitelist key sets per endpoint. A trailing '*' marks the key required.
// These are the only keys a request body may carry on each route; in
// particular role and id never appear outside the admin set.
var (
	signupKeys     = []string{"firstName", "lastName", "email", "password*", "phone"}
	loginKeys      = []string{"emailOrPhone", "password"}
	tokenKeys      = []string{"token"}
	thirdPartyKeys = []string{"firstName", "lastName", "email", "avatarUrl", "thirdPartyToken"}
	updateKeys     = []string{"firstName", "lastName", "email", "password", "phone"}
	byAdminKeys    = []string{"firstName", "lastName", "email", "password", "phone", "role"}
	passwordKeys   = []string{"oldPassword", "newPassword"}
)

// UserHandlers handles authentication and user-directory HTTP requests
type UserHandlers struct {
	authSvc domain.AuthService
	userSvc domain.UserService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(authSvc domain.AuthService, userSvc domain.UserService) *UserHandlers {
	return &UserHandlers{authSvc: authSvc, userSvc: userSvc}
}

// Signup handles self-service registration. The new account always gets the
// user role regardless of what the body claims.
func (h *UserHandlers) Signup(c *gin.Context) {
	body, ok := filteredBody(c, signupKeys)
	if !ok {
		return
	}

	input := domain.SignupInput{
		FirstName: validation.StringField(body, "firstName"),
		LastName:  validation.StringField(body, "lastName"),
		Email:     validation.StringField(body, "email"),
		Password:  validation.StringField(body, "password"),
		Phone:     validation.StringField(body, "phone"),
	}
	if err := checkContact(input.Email, input.Phone); err != nil {
		c.Error(err)
		return
	}

	result, err := h.authSvc.Signup(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, authView(http.StatusCreated, "signup successfully", result))
}

// Login authenticates by email or phone plus password.
func (h *UserHandlers) Login(c *gin.Context) {
	body, ok := filteredBody(c, loginKeys)
	if !ok {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(),
		validation.StringField(body, "emailOrPhone"),
		validation.StringField(body, "password"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, authView(http.StatusOK, "login successfully", result))
}

// Token exchanges a refresh token for a new access/refresh pair.
func (h *UserHandlers) Token(c *gin.Context) {
	body, ok := filteredBody(c, tokenKeys)
	if !ok {
		return
	}

	result, err := h.authSvc.RefreshTokens(c.Request.Context(), validation.StringField(body, "token"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, response.New(http.StatusOK, "token refreshed successfully").
		Set("accessToken", result.AccessToken).
		Set("refreshToken", result.RefreshToken).
		Set("expiresIn", result.ExpiresIn))
}

// LoginByThirdParty signs a user in (creating the account on first login)
// after validating the provider token named by the type query parameter.
func (h *UserHandlers) LoginByThirdParty(c *gin.Context) {
	provider := c.Query("type")

	body, ok := filteredBody(c, thirdPartyKeys)
	if !ok {
		return
	}

	input := domain.ThirdPartyInput{
		FirstName: validation.StringField(body, "firstName"),
		LastName:  validation.StringField(body, "lastName"),
		Email:     validation.StringField(body, "email"),
		AvatarURL: validation.StringField(body, "avatarUrl"),
		Token:     validation.StringField(body, "thirdPartyToken"),
	}

	result, err := h.authSvc.LoginByThirdParty(c.Request.Context(), provider, input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, authView(http.StatusOK, "login successfully", result))
}

// Logout clears the caller's stored refresh token.
func (h *UserHandlers) Logout(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	if err := h.authSvc.Logout(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "logout successfully"))
}

// Me returns the caller's own profile.
func (h *UserHandlers) Me(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	user, err := h.authSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "get user successfully").Set("user", userView(user)))
}

// UpdateSelf patches the caller's own profile. Role can never change here.
func (h *UserHandlers) UpdateSelf(c *gin.Context) {
	body, ok := filteredBody(c, updateKeys)
	if !ok {
		return
	}
	upd, password, err := userUpdateFrom(body)
	if err != nil {
		c.Error(err)
		return
	}

	userID, _ := middleware.UserID(c)
	if err := h.userSvc.UpdateSelf(c.Request.Context(), userID, upd, password); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "update user successfully"))
}

// ChangePassword verifies the old password before setting the new one.
func (h *UserHandlers) ChangePassword(c *gin.Context) {
	body, ok := filteredBody(c, passwordKeys)
	if !ok {
		return
	}

	userID, _ := middleware.UserID(c)
	err := h.authSvc.ChangePassword(c.Request.Context(), userID,
		validation.StringField(body, "oldPassword"),
		validation.StringField(body, "newPassword"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "change password successfully"))
}

// FindUsers lists users for supervisers and admins.
func (h *UserHandlers) FindUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context(), pagination.Parse(c))
	if err != nil {
		c.Error(err)
		return
	}

	views := make([]gin.H, 0, len(users))
	for _, u := range users {
		views = append(views, userView(u))
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "find users successfully").Set("users", views))
}

// GetByID returns one user by id.
func (h *UserHandlers) GetByID(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	user, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "get user successfully").Set("user", userView(user)))
}

// UpdateByID patches another user within the caller's role scope. A missing
// target and an out-of-scope target are indistinguishable to the caller.
func (h *UserHandlers) UpdateByID(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	body, ok := filteredBody(c, updateKeys)
	if !ok {
		return
	}
	upd, password, err := userUpdateFrom(body)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.userSvc.UpdateWithScope(c.Request.Context(), middleware.Role(c), id, upd, password); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "update user successfully"))
}

// DeleteByID removes another user within the caller's role scope.
func (h *UserHandlers) DeleteByID(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	if err := h.userSvc.DeleteWithScope(c.Request.Context(), middleware.Role(c), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "delete user successfully"))
}

// UpdateByAdmin patches another user and may change their role.
func (h *UserHandlers) UpdateByAdmin(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}
	body, ok := filteredBody(c, byAdminKeys)
	if !ok {
		return
	}
	upd, password, err := userUpdateFrom(body)
	if err != nil {
		c.Error(err)
		return
	}
	upd.Role = validation.OptString(body, "role")

	if err := h.userSvc.UpdateWithScope(c.Request.Context(), middleware.Role(c), id, upd, password); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "update user successfully"))
}

// DeleteByAdmin removes a user or superviser account.
func (h *UserHandlers) DeleteByAdmin(c *gin.Context) {
	h.DeleteByID(c)
}

// CreateByAdmin creates an account with an explicit role (user or superviser).
func (h *UserHandlers) CreateByAdmin(c *gin.Context) {
	body, ok := filteredBody(c, byAdminKeys)
	if !ok {
		return
	}

	input := domain.SignupInput{
		FirstName: validation.StringField(body, "firstName"),
		LastName:  validation.StringField(body, "lastName"),
		Email:     validation.StringField(body, "email"),
		Password:  validation.StringField(body, "password"),
		Phone:     validation.StringField(body, "phone"),
	}
	if err := checkContact(input.Email, input.Phone); err != nil {
		c.Error(err)
		return
	}

	user, err := h.userSvc.CreateByAdmin(c.Request.Context(), input, validation.StringField(body, "role"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.New(http.StatusCreated, "create user successfully").Set("user", userView(user)))
}

// filteredBody binds the JSON body and applies the whitelist. On failure it
// records the error and reports false; the caller just returns.
func filteredBody(c *gin.Context, allowed []string) (map[string]any, bool) {
	body := map[string]any{}
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Error(&domain.InvalidFieldError{Field: "body", Reason: "invalid"})
			return nil, false
		}
	}
	filtered, err := validation.Filter(allowed, body)
	if err != nil {
		c.Error(err)
		return nil, false
	}
	return filtered, true
}

// userUpdateFrom maps whitelisted body keys onto an update struct. The plain
// password travels separately so the service can hash it.
func userUpdateFrom(body map[string]any) (domain.UserUpdate, string, error) {
	upd := domain.UserUpdate{
		FirstName: validation.OptString(body, "firstName"),
		LastName:  validation.OptString(body, "lastName"),
		Email:     validation.OptString(body, "email"),
		Phone:     validation.OptString(body, "phone"),
	}
	if upd.Email != nil && !validation.IsEmail(*upd.Email) {
		return upd, "", &domain.InvalidFieldError{Field: "email", Reason: "invalid"}
	}
	if upd.Phone != nil && *upd.Phone != "" && !validation.IsPhone(*upd.Phone) {
		return upd, "", &domain.InvalidFieldError{Field: "phone", Reason: "invalid"}
	}
	return upd, validation.StringField(body, "password"), nil
}

// checkContact validates email format and, when given, the phone format.
func checkContact(email, phone string) error {
	if !validation.IsEmail(email) {
		return &domain.InvalidFieldError{Field: "email", Reason: "invalid"}
	}
	if phone != "" && !validation.IsPhone(phone) {
		return &domain.InvalidFieldError{Field: "phone", Reason: "invalid"}
	}
	return nil
}

func userIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	return idParam(c, "User")
}

// userView is the public shape of a user. Password hash and refresh token
// never leave the server.
func userView(u *domain.User) gin.H {
	view := gin.H{
		"id":        u.ID.Hex(),
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"fullName":  u.FullName(),
		"email":     u.Email,
		"role":      u.Role,
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	}
	if u.Phone != "" {
		view["phone"] = u.Phone
	}
	if u.AvatarURL != "" {
		view["avatarUrl"] = u.AvatarURL
	}
	return view
}

func authView(status int, message string, result *domain.AuthResult) response.Envelope {
	return response.New(status, message).
		Set("user", userView(result.User)).
		Set("accessToken", result.AccessToken).
		Set("refreshToken", result.RefreshToken).
		Set("expiresIn", result.ExpiresIn)
}
