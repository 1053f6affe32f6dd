package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// calcTotal — сколько расчётов выполнено по каждому семейству продуктов.
var calcTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "calc_requests_total",
	Help: "Number of completed price calculations per product family.",
}, []string{"family"})
