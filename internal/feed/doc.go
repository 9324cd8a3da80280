// Package feed generates the synthetic operations log.
//
// A Generator draws one message from a fixed canned set per call and stamps it
// with the local wall-clock time. History keeps the most recent HistoryLimit
// entries, newest first. Nothing here owns a timer; scheduling lives in the
// app package so that the timer's lifetime follows the dashboard's.
package feed
