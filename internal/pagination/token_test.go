package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/jobbot-gateway/internal/pagination"
)

func TestParseActionToken(t *testing.T) {
	cases := []struct {
		token string
		want  pagination.Action
	}{
		{"vacancy_search_page_0", pagination.Action{Prefix: "vacancy_search", Kind: pagination.ActionPage, Page: 0}},
		{"vacancy_search_page_12", pagination.Action{Prefix: "vacancy_search", Kind: pagination.ActionPage, Page: 12}},
		{"vacancy_search_info", pagination.Action{Prefix: "vacancy_search", Kind: pagination.ActionInfo}},
		{"a_page_b_page_3", pagination.Action{Prefix: "a_page_b", Kind: pagination.ActionPage, Page: 3}},
		{"x_info_page_1", pagination.Action{Prefix: "x_info", Kind: pagination.ActionPage, Page: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			got, err := pagination.ParseActionToken(tc.token)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseActionToken_Malformed(t *testing.T) {
	for _, token := range []string{
		"",
		"_info",
		"_page_1",
		"vacancy_search",
		"vacancy_search_page_",
		"vacancy_search_page_-1",
		"vacancy_search_page_+1",
		"vacancy_search_page_1a",
		"vacancy_search_page_99999999999999999999999",
	} {
		t.Run(token, func(t *testing.T) {
			_, err := pagination.ParseActionToken(token)
			assert.ErrorIs(t, err, pagination.ErrMalformedToken)
		})
	}
}

func TestTokens_RoundTrip(t *testing.T) {
	for _, page := range []int{0, 1, 7, 1 << 20} {
		a, err := pagination.ParseActionToken(pagination.PageToken("applications", page))
		require.NoError(t, err)
		assert.Equal(t, pagination.Action{Prefix: "applications", Kind: pagination.ActionPage, Page: page}, a)
	}

	a, err := pagination.ParseActionToken(pagination.InfoToken("admin_users"))
	require.NoError(t, err)
	assert.Equal(t, pagination.ActionInfo, a.Kind)
	assert.Equal(t, "info", a.Kind.String())
}
