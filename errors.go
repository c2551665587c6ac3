/*
Copyright © 2026 MadushenP
*/

package main

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// Recoverable game errors, reported only to the requesting connection.
var (
	errRoomNotFound    = errors.New("room-not-found")
	errInvalidTeam     = errors.New("invalid-team")
	errTurnInProgress  = errors.New("turn-in-progress")
	errNoEligibleWords = errors.New("no-eligible-words")
)

func logf(cfg *Config, format string, args ...any) {
	if !cfg.verbose {
		return
	}

	log.Printf("%s | "+format, append([]any{time.Now().Format(logDate)}, args...)...)
}

func newPage(title, body string) string {
	var htmlBody strings.Builder

	htmlBody.WriteString(`<!DOCTYPE html><html lang="en"><head>`)
	htmlBody.WriteString(`<style>`)
	htmlBody.WriteString(`html,body,a{display:block;height:100%;width:100%;text-decoration:none;color:inherit;cursor:auto;}</style>`)
	htmlBody.WriteString(fmt.Sprintf("<title>%s</title></head>", title))
	htmlBody.WriteString(fmt.Sprintf("<body><a href=\"/\">%s</a></body></html>", body))

	return htmlBody.String()
}
