package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProductsCreated is a Prometheus counter for tracking the total number of products created.
	ProductsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_created_total",
		Help: "The total number of products created",
	})

	// ProductsUpdated is a Prometheus counter for tracking the total number of products updated.
	ProductsUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_updated_total",
		Help: "The total number of products updated",
	})

	// ProductsDeleted is a Prometheus counter for tracking the total number of products deleted.
	ProductsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "products_deleted_total",
		Help: "The total number of products deleted",
	})

	// FormValidationFailures counts rejected form submissions per failing field.
	FormValidationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "product_form_validation_failures_total",
		Help: "The total number of form fields rejected on submit",
	}, []string{"field"})

	// SearchesApplied counts debounced searches that reached the filter.
	SearchesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "product_searches_applied_total",
		Help: "The total number of search texts applied after debouncing",
	})

	// NotificationFailures counts product messages that could not be published.
	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "product_notification_failures_total",
		Help: "The total number of product notifications that failed to publish",
	})
)
