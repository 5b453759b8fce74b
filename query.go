// Copyright 2026 The glium Authors
// SPDX-License-Identifier: MIT

package glium

import (
	"github.com/tdoylend/glium/caps"
	"github.com/tdoylend/glium/driver"
	"github.com/tdoylend/glium/registry"
	"github.com/tdoylend/glium/state"
)

// QueryKind selects what a query measures.
type QueryKind = registry.QueryKind

const (
	QuerySamplesPassed    = registry.QuerySamplesPassed
	QueryAnySamplesPassed = registry.QueryAnySamplesPassed
	QueryTimeElapsed      = registry.QueryTimeElapsed
)

// Query is a handle to a driver query object owned by a Context.
type Query struct {
	ctx *Context
	h   registry.Handle
}

// CreateQuery allocates a query object. Time-elapsed queries require the
// timer-query capability.
func (c *Context) CreateQuery(kind QueryKind) (Query, error) {
	c.enter()
	defer c.leave()
	if c.closed {
		return Query{}, ErrContextClosed
	}
	if kind == QueryTimeElapsed {
		if err := c.table.Require(caps.FeatureTimerQuery, "CreateQuery"); err != nil {
			return Query{}, err
		}
	}
	id := c.drv.GenQuery()
	h := c.reg.Insert(registry.KindQuery, id, registry.QueryMeta{Kind: kind})
	c.log.Debug("glium: query created", "handle", h.String(), "kind", kind.String())
	return Query{ctx: c, h: h}, nil
}

func queryTarget(kind QueryKind) driver.Enum {
	switch kind {
	case QueryAnySamplesPassed:
		return driver.ANY_SAMPLES_PASSED
	case QueryTimeElapsed:
		return driver.TIME_ELAPSED
	}
	return driver.SAMPLES_PASSED
}

// Begin starts the query. Only one query per target can run at a time;
// the cache's active-query slot enforces the pairing.
func (q Query) Begin() error {
	c := q.ctx
	c.enter()
	defer c.leave()
	if c.closed {
		return ErrContextClosed
	}
	rec, err := c.resolve(q.h, registry.KindQuery)
	if err != nil {
		return err
	}
	target := queryTarget(rec.Meta.(registry.QueryMeta).Kind)
	slot := state.ActiveQuery(target)
	if cur, known := c.cache.Current(slot); known && !cur.IsZero() {
		return ErrQueryActive
	}
	c.drv.BeginQuery(target, rec.DriverID)
	c.cache.SetBound(slot, q.h)
	if err := c.finish("query begin", nil); err != nil {
		// The driver may have refused the begin; the slot cannot claim
		// a running query it would then never release.
		c.cache.SetUnknown(slot)
		return err
	}
	return nil
}

// End stops the query started by Begin.
func (q Query) End() error {
	c := q.ctx
	c.enter()
	defer c.leave()
	if c.closed {
		return ErrContextClosed
	}
	rec, err := c.resolve(q.h, registry.KindQuery)
	if err != nil {
		return err
	}
	target := queryTarget(rec.Meta.(registry.QueryMeta).Kind)
	slot := state.ActiveQuery(target)
	if cur, known := c.cache.Current(slot); !known || cur != q.h {
		return ErrQueryNotActive
	}
	c.drv.EndQuery(target)
	c.cache.SetUnbound(slot)
	if err := c.finish("query end", nil); err != nil {
		c.cache.SetUnknown(slot)
		return err
	}
	return nil
}

// Result fetches the query value. With wait false it returns ok=false
// when the result is not yet available instead of stalling the pipeline.
func (q Query) Result(wait bool) (value uint64, ok bool, err error) {
	c := q.ctx
	c.enter()
	defer c.leave()
	if c.closed {
		return 0, false, ErrContextClosed
	}
	rec, err := c.resolve(q.h, registry.KindQuery)
	if err != nil {
		return 0, false, err
	}
	if !wait {
		if c.drv.GetQueryObject(rec.DriverID, driver.QUERY_RESULT_AVAILABLE) == 0 {
			return 0, false, nil
		}
	}
	value = c.drv.GetQueryObject(rec.DriverID, driver.QUERY_RESULT)
	return value, true, c.finish("query result", nil)
}

// Destroy deletes the query object.
func (q Query) Destroy() error { return q.ctx.destroy(q.h) }
