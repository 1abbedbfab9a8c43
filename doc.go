// Package fxdash provides the domain types and the pure logic behind the fxd
// currency dashboard.
//
// The dashboard itself only fetches and renders: rates, rate history,
// central-bank interest rates and AI commentary come from an external
// backend, and trades and exposures come from an external portfolio
// service. The logic that belongs here is small but has real semantics:
//   - Trade matching: selecting the trades relevant to a currency pair,
//     including trades booked on the inverse pair, whose direction is
//     flipped and whose forward rate is replaced by its reciprocal.
//   - Exposure aggregation: the signed net notional of the matched trades,
//     and per-currency exposure lookups.
//   - Analysis presets: the user's analysis preferences, turned into the
//     query of the AI-analysis endpoint or into a prompt for a local model.
//
// All functions operating on trades and exposures are pure and total: they
// never fail on well-typed input. Validating what the upstream feeds send is
// the job of the portfolio package.
package fxdash
