// Package divitrack implements a dividend eligibility and tax estimation
// engine for a personal stock portfolio.
//
// The user declares holdings (ticker, quantity, purchase date). The engine
// fetches the historical dividend payouts for each ticker from a market data
// provider, keeps only the payouts whose ex-date falls strictly after the
// purchase date, and aggregates them into a gross dividend total with flat
// rate TDS and income tax slab estimates.
//
// The figures are estimates, not tax advice: TDS is modeled as a fixed 10%
// informational amount, and the slab rate is applied uniformly to the gross
// dividend income. There is no currency conversion and no corporate action
// adjustment.
package divitrack
