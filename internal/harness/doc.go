// Package harness runs conformance scenarios against the derivation engine.
//
// A scenario names one root and a list of cases. Each case is derived in
// full, every finished derivation is written to a fresh in-memory store and
// replayed from it, and the scenario's assertions are evaluated against the
// stored records.
//
// # Scenario Format
//
//	name: bhu_lat
//	description: "BU in law takes Sap and guna"
//	dhatu: BU
//	code: "01.0001"
//	prayoga: kartari
//	cases:
//	  - la: law
//	    purusha: prathama
//	    vacana: eka
//	    expect: [Bavati]
//	    exact: true
//	assertions:
//	  - type: history_contains
//	    case: 0
//	    rule: "3.1.68"
//	  - type: history_order
//	    case: 0
//	    rules: ["3.2.123", "3.4.78", "3.1.68"]
//
// # Assertion Types
//
//   - forms_include: every listed form is derived
//   - forms_exact: exactly the listed forms are derived, in order
//   - form_count: exactly N distinct forms are derived
//   - history_contains: some derivation of the case applied the rule
//   - history_order: the first derivation applied the rules in order
//   - choice: some derivation recorded the decision for the rule
//
// # Deterministic Testing
//
// Record IDs come from testutil.IDSequence seeded with the scenario name, so
// the store contents and golden snapshots are identical across runs.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/bhu_lat.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(ctx, scenario)
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
