package graphml_test

import (
	"fmt"
	"os"
	"strconv"

	"github.com/matzehuels/graphml/pkg/graph"
	"github.com/matzehuels/graphml/pkg/graphml"
)

func ExampleConfig_Render() {
	g := graph.New[string, string]()
	app := g.AddNode("app")
	lib := g.AddNode("lib")
	_, _ = g.AddEdge(app, lib, "imports")

	cfg := graphml.NewConfig[string, string]().
		PrettyPrint(true).
		ExportNodeWeightsDisplay()
	fmt.Println(cfg.Render(g))
	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <graphml xmlns="http://graphml.graphdrawing.org/xmlns">
	//   <graph edgedefault="directed">
	//     <node id="n0">
	//       <data key="weight">app</data>
	//     </node>
	//     <node id="n1">
	//       <data key="weight">lib</data>
	//     </node>
	//     <edge id="e0" source="n0" target="n1" />
	//   </graph>
	//   <key id="weight" for="node" attr.name="weight" attr.type="string" />
	// </graphml>
}

type pkg struct {
	Name  string
	Stars int
}

func ExampleCustom() {
	g := graph.NewUndirected[pkg, float64]()
	a := g.AddNode(pkg{Name: "cobra", Stars: 38000})
	b := g.AddNode(pkg{Name: "pflag", Stars: 2400})
	_, _ = g.AddEdge(a, b, 0.5)

	cfg := graphml.NewConfig[pkg, float64]().
		PrettyPrint(true).
		ExportNodeWeights(graphml.Custom(func(p pkg) []graphml.Attr {
			return []graphml.Attr{
				{Name: "name", Value: p.Name},
				{Name: "stars", Value: strconv.Itoa(p.Stars)},
			}
		})).
		ExportEdgeWeightsDisplay()

	if err := cfg.Encode(os.Stdout, g); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <graphml xmlns="http://graphml.graphdrawing.org/xmlns">
	//   <graph edgedefault="undirected">
	//     <node id="n0">
	//       <data key="name">cobra</data>
	//       <data key="stars">38000</data>
	//     </node>
	//     <node id="n1">
	//       <data key="name">pflag</data>
	//       <data key="stars">2400</data>
	//     </node>
	//     <edge id="e0" source="n0" target="n1">
	//       <data key="weight">0.5</data>
	//     </edge>
	//   </graph>
	//   <key id="name" for="node" attr.name="name" attr.type="string" />
	//   <key id="stars" for="node" attr.name="stars" attr.type="string" />
	//   <key id="weight" for="edge" attr.name="weight" attr.type="string" />
	// </graphml>
}
