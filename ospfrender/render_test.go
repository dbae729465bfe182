package ospfrender_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edgarcosta92/fibbing/igpgraph"
	"github.com/edgarcosta92/fibbing/lsa"
	"github.com/edgarcosta92/fibbing/ospfrender"
)

func TestRenderLocal(t *testing.T) {
	topo := igpgraph.New()

	advs := ospfrender.Render([]lsa.LSA{
		lsa.Local{Node: "R1", NextHop: "R2", Dest: "1_8"},
	}, topo)

	require.Len(t, advs, 1)
	require.Equal(t, "R1", advs[0].Router)
	require.Empty(t, advs[0].PhantomID)
	require.Len(t, advs[0].Metrics, 1)
	require.Zero(t, advs[0].Metrics[0].Cost)
	require.Equal(t, []string{"1_8"}, advs[0].Metrics[0].Networks)
}

func TestRenderGlobalSplitsRealAndPhantomCost(t *testing.T) {
	topo := igpgraph.New()
	_, err := topo.AddEdge("A", "O", 25)
	require.NoError(t, err)

	advs := ospfrender.Render([]lsa.LSA{
		lsa.Global{Node: "A", NextHop: "O", Cost: 35, Dest: "3_8"},
	}, topo)

	require.Len(t, advs, 1)
	adv := advs[0]
	require.Equal(t, "A", adv.Router)
	require.Equal(t, "__f_A_O_3_8", adv.PhantomID)
	require.Len(t, adv.Metrics, 2)
	require.Equal(t, int64(25), adv.Metrics[0].Cost)
	require.Equal(t, []string{"__f_A_O_3_8"}, adv.Metrics[0].Networks)
	require.Equal(t, int64(10), adv.Metrics[1].Cost)
	require.Equal(t, []string{"3_8"}, adv.Metrics[1].Networks)
}
