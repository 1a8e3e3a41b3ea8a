/*
 * Copyright © 2026 Meridian Apps Inc., All rights reserved.
 */

/*
Package rpcsource translates abstract CRUD operations into named
remote-procedure calls against a business-logic service, and materializes
the raw responses back into records and record sets.

The library is organized in layers:
  - transport: sends one named call with arguments over the wire
    (transport/jsonrpc is the default; transport/mock scripts tests)
  - provider: qualifies method names with the endpoint's contract and
    applies a non-cancelling client-side timeout race
  - source: the generic CRUD source with pluggable per-operation passing
    strategies, plus the single-call RPC source
  - source/bls: the business-logic protocol specialization with composite
    identifiers, page/offset/position navigation, batched diff updates,
    and multi-group move and destroy

Basic Usage:

	p, _ := provider.New(provider.Endpoint{
		Address:  "https://svc.example.com/rpc",
		Contract: "Orders",
	})
	src := bls.New(p, bls.WithNavigationMode(query.NavigationOffset))

	q := query.New()
	q.Where = query.Where{"status": "open"}
	q.Limit = query.Int(50)

	ds, err := src.Query(ctx, q)

Sources for several contracts can be registered on a SourceManager and
resolved by key at composition time.
*/
package rpcsource
