package model

// Package model defines the domain data structures shared across the app:
// download requests, fetch outcomes, and batch accounting. Outcomes are
// explicit tagged results so callers never compare against sentinel values.
