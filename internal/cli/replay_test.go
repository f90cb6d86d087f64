package cli

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay_AllMatch(t *testing.T) {
	db := tempDB(t)
	recs := recordKrLit(t, db)

	stdout, _, code := execute(t, "replay", "--db", db)
	require.Equal(t, ExitSuccess, code, stdout)
	assert.Contains(t, stdout, "✓ All records reproduced")

	stdout, _, code = execute(t, "replay", "--db", db, "--id", recs[1].ID, "--format", "json")
	require.Equal(t, ExitSuccess, code)

	var result ReplayResult
	resp := decodeData(t, stdout, &result)
	assert.Equal(t, "ok", resp.Status)
	require.Equal(t, 1, result.Total)
	assert.True(t, result.Records[0].Match)
	assert.Equal(t, recs[1].Surface, result.Records[0].Surface)

	stdout, _, code = execute(t, "replay", "--db", db, "--request", recs[0].RequestID, "--format", "json")
	require.Equal(t, ExitSuccess, code)
	decodeData(t, stdout, &result)
	assert.Equal(t, len(recs), result.Total)
	assert.True(t, result.AllMatch)
}

func TestReplay_Mismatch(t *testing.T) {
	db := tempDB(t)
	recs := recordKrLit(t, db)

	conn, err := sql.Open("sqlite3", db)
	require.NoError(t, err)
	_, err = conn.Exec(`UPDATE derivations SET digest = 'tampered' WHERE id = ?`, recs[0].ID)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	stdout, _, code := execute(t, "replay", "--db", db, "--format", "json")
	assert.Equal(t, ExitFailure, code)

	var result ReplayResult
	resp := decodeData(t, stdout, &result)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "E_REPLAY", resp.Error.Code)
	assert.False(t, result.AllMatch)
	assert.False(t, result.Records[0].Match)
	assert.Contains(t, result.Records[0].Error, "replay digest mismatch")

	stdout, _, code = execute(t, "replay", "--db", db)
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, stdout, "✗ Replay verification failed")
}

func TestReplay_UnknownID(t *testing.T) {
	_, stderr, code := execute(t, "replay", "--db", tempDB(t), "--id", "nope")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "no derivation with id nope")
}

func TestReplay_EmptyDatabase(t *testing.T) {
	stdout, _, code := execute(t, "replay", "--db", tempDB(t))
	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "Replay Summary: 0 record(s)")
}
