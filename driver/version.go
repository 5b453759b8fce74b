// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"fmt"
	"strings"
)

// API distinguishes the desktop and embedded flavors of the driver API.
type API uint8

const (
	OpenGL API = iota
	OpenGLES
)

func (a API) String() string {
	if a == OpenGLES {
		return "OpenGL ES"
	}
	return "OpenGL"
}

// Version is a parsed driver version report.
type Version struct {
	API   API
	Major int
	Minor int
}

// AtLeast reports whether v is the given API at or above major.minor.
func (v Version) AtLeast(api API, major, minor int) bool {
	if v.API != api {
		return false
	}
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

func (v Version) String() string {
	return fmt.Sprintf("%s %d.%d", v.API, v.Major, v.Minor)
}

// ParseVersion parses the VERSION string reported by the driver.
//
// Desktop drivers report "major.minor[.release] [vendor info]". Embedded
// drivers prefix the same shape with "OpenGL ES " (and some add a profile
// word, e.g. "OpenGL ES-CM 1.1"). Vendor suffixes after the numeric part
// are ignored.
func ParseVersion(s string) (Version, error) {
	orig := s
	v := Version{API: OpenGL}
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "OpenGL ES-CM "); ok {
		v.API = OpenGLES
		s = rest
	} else if rest, ok := strings.CutPrefix(s, "OpenGL ES-CL "); ok {
		v.API = OpenGLES
		s = rest
	} else if rest, ok := strings.CutPrefix(s, "OpenGL ES "); ok {
		v.API = OpenGLES
		s = rest
	}

	// Keep the leading "major.minor[.release]" token only.
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return Version{}, fmt.Errorf("driver: malformed version string %q", orig)
	}
	var err error
	if v.Major, err = atoi(parts[0]); err != nil {
		return Version{}, fmt.Errorf("driver: malformed version string %q", orig)
	}
	if v.Minor, err = atoi(parts[1]); err != nil {
		return Version{}, fmt.Errorf("driver: malformed version string %q", orig)
	}
	return v, nil
}

// atoi parses a small non-negative decimal. strconv.Atoi accepts signs and
// huge values; version components are neither.
func atoi(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty")
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("non-digit %q", c)
		}
		n = n*10 + int(c-'0')
		if n > 1<<20 {
			return 0, fmt.Errorf("out of range")
		}
	}
	return n, nil
}
