/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Shared test fixtures.
 */

package fixtree_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixorch/fixtree/schema"
)

func loadSampleRepo(t *testing.T) *schema.Repository {
	t.Helper()
	f, err := os.Open("testdata/orchestra_sample.xml")
	require.NoError(t, err)
	defer f.Close()

	repo, err := schema.Load(f)
	require.NoError(t, err)
	return repo
}
