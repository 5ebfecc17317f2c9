package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	BackendRequests = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "coin_backend_requests_total", Help: "Total requests issued to the backend API"},
	)
	BackendErrors = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "coin_backend_errors_total", Help: "Total backend requests that failed"},
	)
	StoreRefreshes = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "coin_store_refreshes_total", Help: "Total full collection refreshes across entity stores"},
	)
	WizardSubmissions = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "coin_wizard_submissions_total", Help: "Total participation submissions completed through the wizard"},
	)
)

func Register() {
	prometheus.MustRegister(BackendRequests, BackendErrors, StoreRefreshes, WizardSubmissions)
}
