package api

import "github.com/rohanthewiz/rweb"

// HealthCheck returns the health status of the application
func HealthCheck(c rweb.Context) error {
	return c.WriteJSON(map[string]interface{}{
		"status":  "healthy",
		"service": "photosearch",
		"version": "1.0.0",
	})
}
