package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hirely-api/internal/httperr"
)

type errorEntry struct {
	status  int
	message string
}

// businessErrors maps use-case codes to responses. Codes missing here
// are treated as internal errors.
var businessErrors = map[string]errorEntry{
	// ---------- 400 ----------
	"invalid_request":            {http.StatusBadRequest, "Invalid request"},
	"invalid_id":                 {http.StatusBadRequest, "Invalid id"},
	"weak_password":              {http.StatusBadRequest, "Password must be at least 8 characters"},
	"password_too_long":          {http.StatusBadRequest, "Password must be at most 72 bytes"},
	"invalid_email_domain":       {http.StatusBadRequest, "The email domain does not accept mail"},
	"email_taken":                {http.StatusBadRequest, "Email already in use"},
	"service_exists":             {http.StatusBadRequest, "A service with this name already exists"},
	"service_in_use":             {http.StatusBadRequest, "Service is referenced by offerings or bookings"},
	"service_already_registered": {http.StatusBadRequest, "Provider already offers this service"},
	"no_services":                {http.StatusBadRequest, "At least one service is required"},
	"invalid_hourly_rate":        {http.StatusBadRequest, "Hourly rate must be zero or more"},
	"invalid_availability":       {http.StatusBadRequest, "Availability must be available or unavailable"},
	"service_not_offered":        {http.StatusBadRequest, "This provider does not offer the selected service"},
	"provider_unavailable":       {http.StatusBadRequest, "Provider is not accepting bookings"},
	"self_booking":               {http.StatusBadRequest, "You cannot book yourself"},
	"invalid_date_or_time":       {http.StatusBadRequest, "Date must be YYYY-MM-DD and times HH:MM"},
	"invalid_time_range":         {http.StatusBadRequest, "End time must be after start time"},
	"invalid_total_cost":         {http.StatusBadRequest, "Total cost must be zero or more"},
	"time_conflict":              {http.StatusBadRequest, "Provider already has a booking at this time"},
	"invalid_status":             {http.StatusBadRequest, "Invalid status"},
	"invalid_transition":         {http.StatusBadRequest, "Booking cannot move to this status"},
	"invalid_user_status":        {http.StatusBadRequest, "Status must be active, inactive or suspended"},
	"invalid_rating":             {http.StatusBadRequest, "Rating must be between 1 and 5"},
	"booking_not_completed":      {http.StatusBadRequest, "Only completed bookings can be reviewed"},
	"booking_not_confirmed":      {http.StatusBadRequest, "Only confirmed bookings can be paid"},
	"review_exists":              {http.StatusBadRequest, "This booking has already been reviewed"},
	"invalid_language":           {http.StatusBadRequest, "Invalid language"},
	"invalid_image":              {http.StatusBadRequest, "Image must be JPEG, PNG, GIF or WebP"},
	"image_too_large":            {http.StatusBadRequest, "Image must be 5 MB or smaller"},

	// ---------- 401 ----------
	"invalid_credentials": {http.StatusUnauthorized, "Invalid email or password"},

	// ---------- 403 ----------
	"account_inactive":     {http.StatusForbidden, "Account is not active"},
	"forbidden":            {http.StatusForbidden, "You do not have access to this resource"},
	"forbidden_transition": {http.StatusForbidden, "You cannot move this booking to that status"},
	"cannot_delete_admin":  {http.StatusForbidden, "Admin accounts cannot be deleted"},
	"seed_disabled":        {http.StatusForbidden, "Admin seeding is disabled"},
	"invalid_seed_secret":  {http.StatusForbidden, "Invalid seed secret"},

	// ---------- 404 ----------
	"user_not_found":     {http.StatusNotFound, "User not found"},
	"provider_not_found": {http.StatusNotFound, "Provider not found"},
	"service_not_found":  {http.StatusNotFound, "Service not found"},
	"offering_not_found": {http.StatusNotFound, "Offering not found"},
	"booking_not_found":  {http.StatusNotFound, "Booking not found"},

	// ---------- 503 ----------
	"payments_disabled": {http.StatusServiceUnavailable, "Payments are not configured"},
	"storage_disabled":  {http.StatusServiceUnavailable, "Image storage is not configured"},
}

// writeError renders a use-case error. Unknown errors are logged and
// hidden behind a generic 500.
func writeError(c *gin.Context, err error) {
	code := httperr.CodeOf(err)
	if e, ok := businessErrors[code]; ok {
		httperr.Write(c, e.status, code, e.message)
		return
	}

	log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	httperr.Internal(c, "internal_error", "Internal server error")
}

func badRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Invalid request")
}
