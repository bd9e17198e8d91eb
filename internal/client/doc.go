// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the dialer process lifecycle.
//
// It runs the controller loop and the optional control API as background
// workers, starts initialization and then hands the terminal to the UI
// until the user quits or the process is signalled.
package client
