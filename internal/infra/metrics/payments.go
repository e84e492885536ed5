package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() {
	register(
		paymentsTotal,
		paymentsAmountTotal,
	)
}

var (
	paymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Authorization attempts by outcome (Authorized/Declined/Rejected/BadRequest/Unavailable).",
		},
		[]string{"status"},
	)

	paymentsAmountTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_amount_total",
			Help: "Total authorized amount in minor units, labeled by currency.",
		},
		[]string{"currency"},
	)
)

func IncPayment(status string) {
	paymentsTotal.WithLabelValues(norm(status)).Inc()
}

func AddPaymentAmount(currency string, amount int64) {
	paymentsAmountTotal.WithLabelValues(norm(currency)).Add(float64(amount))
}
