package jwtx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/microblog/pkg/jwtx"
)

func TestClaimValidators(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := jwtx.NewClaims("7", jwtx.PurposeResetPassword, "microblog", time.Minute, now)

	require.NoError(t, c.ValidateIssuer("microblog"))
	require.NoError(t, c.ValidateIssuer(""))
	require.ErrorIs(t, c.ValidateIssuer("other"), jwtx.ErrIssuer)

	require.NoError(t, c.ValidatePurpose(jwtx.PurposeResetPassword))
	require.ErrorIs(t, c.ValidatePurpose(""), jwtx.ErrPurpose)

	require.NoError(t, c.ValidateExpiry(now))
	require.ErrorIs(t, c.ValidateExpiry(now.Add(time.Minute)), jwtx.ErrExpired)

	c.ExpiresAt = nil
	require.ErrorIs(t, c.ValidateExpiry(now), jwtx.ErrInvalidClaim)
}
