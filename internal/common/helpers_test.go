package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTruncateHash(t *testing.T) {
	require.Equal(t, "01234567...CDEF0123", TruncateHash("0123456789ABCDEF0123"))
	require.Equal(t, "ABCDEF", TruncateHash("ABCDEF"))
	require.Equal(t, "", TruncateHash(""))

	hash := "E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855"
	require.Equal(t, "E3B0C442...7852B855", TruncateHash(hash))
}

func TestTruncateAddress(t *testing.T) {
	address := "leo1qypqxpq9qcrsszg2pvxq6rs0zqg3yyc5z5tpwp"
	require.Equal(t, "leo1qypqxp...z5tpwp", TruncateAddress(address))
	require.Equal(t, "leo1short", TruncateAddress("leo1short"))
}

func TestFormatTime(t *testing.T) {
	require.Equal(t, "", FormatTime(time.Time{}))

	ts := time.Date(2024, 5, 1, 12, 30, 15, 0, time.Local)
	require.Equal(t, "2024-05-01 12:30:15", FormatTime(ts))
}

func TestFeeLabel(t *testing.T) {
	require.Equal(t, "500 stake", FeeLabel(500, "stake"))
}

func TestParseBaseUnits(t *testing.T) {
	n, err := ParseBaseUnits(" 1000 ")
	require.NoError(t, err)
	require.Equal(t, "1000", n.String())

	n, err = ParseBaseUnits("123456789012345678901234567890")
	require.NoError(t, err)
	require.Equal(t, "123456789012345678901234567890", n.String())

	for _, bad := range []string{"", "0", "000", "-5", "+5", "1.5", "1e3", "abc", "10 20"} {
		_, err := ParseBaseUnits(bad)
		require.Error(t, err, bad)
	}
}

func TestCompareAmounts(t *testing.T) {
	cmp, err := CompareAmounts("10", "9")
	require.NoError(t, err)
	require.Equal(t, 1, cmp)

	cmp, err = CompareAmounts("9", "10")
	require.NoError(t, err)
	require.Equal(t, -1, cmp)

	cmp, err = CompareAmounts("7", "7")
	require.NoError(t, err)
	require.Equal(t, 0, cmp)

	_, err = CompareAmounts("x", "1")
	require.Error(t, err)
}
