package entrypoint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reportTaskMethod = `    @task
    def report(self) -> Task:
        return Task(
            config=self.tasks_config['report'],
        )`

func TestAddMethod_AppendsAtEndOfClass(t *testing.T) {
	doc := openFixture(t, crewSource)

	require.NoError(t, doc.AddMethod(KindTask, "report", reportTaskMethod))
	require.True(t, doc.Dirty())

	tasks, err := doc.MethodNames(KindTask)
	require.NoError(t, err)
	assert.Equal(t, []string{"summarize", "report"}, tasks)

	rendered := string(doc.Render())
	assert.True(t, strings.HasSuffix(rendered, reportTaskMethod+"\n"),
		"new method should be the last member of the class")
	// Everything before the insertion point is untouched.
	assert.True(t, strings.HasPrefix(rendered, strings.TrimSuffix(crewSource, "\n")))
}

func TestAddMethod_DuplicateName(t *testing.T) {
	doc := openFixture(t, crewSource)

	err := doc.AddMethod(KindTask, "summarize", reportTaskMethod)
	var derr *DuplicateNameError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, KindTask, derr.Kind)
	assert.Equal(t, "summarize", derr.Name)
	assert.False(t, doc.Dirty(), "failed mutation must not change the tree")
}

func TestAddMethod_SameNameDifferentKindAllowed(t *testing.T) {
	doc := openFixture(t, crewSource)

	method := `    @task
    def researcher(self) -> Task:
        return Task(
            config=self.tasks_config['researcher'],
        )`
	require.NoError(t, doc.AddMethod(KindTask, "researcher", method))
}

func TestRemoveMethod_RestoresPreAddState(t *testing.T) {
	doc := openFixture(t, crewSource)

	require.NoError(t, doc.AddMethod(KindTask, "report", reportTaskMethod))
	require.NoError(t, doc.RemoveMethod(KindTask, "report"))

	assert.Equal(t, crewSource, string(doc.Render()))
}

func TestRemoveMethod_NotFound(t *testing.T) {
	doc := openFixture(t, crewSource)

	err := doc.RemoveMethod(KindTask, "missing")
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.False(t, doc.Dirty())
}

func TestRemoveMethod_MiddleOfClass(t *testing.T) {
	doc := openFixture(t, crewSource)

	require.NoError(t, doc.RemoveMethod(KindTask, "summarize"))

	tasks, err := doc.MethodNames(KindTask)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	rendered := string(doc.Render())
	assert.NotContains(t, rendered, "summarize")
	assert.NotContains(t, rendered, "\n\n\n", "removal should not leave stacked blank lines")
	// Surrounding methods survive untouched.
	assert.Contains(t, rendered, "def researcher(self) -> Agent:")
	assert.Contains(t, rendered, "def crew(self) -> Crew:")
}

func TestAddTool_AppendsToEmptyList(t *testing.T) {
	doc := openFixture(t, crewSource)

	require.NoError(t, doc.AddTool("researcher", "search_tool"))

	names, err := doc.ToolNames("researcher")
	require.NoError(t, err)
	assert.Equal(t, []string{"search_tool"}, names)
	assert.Contains(t, string(doc.Render()), "tools=[search_tool]")
}

func TestAddTool_Idempotent(t *testing.T) {
	doc := openFixture(t, crewSource)

	require.NoError(t, doc.AddTool("researcher", "search_tool"))
	require.NoError(t, doc.AddTool("researcher", "search_tool"))

	names, err := doc.ToolNames("researcher")
	require.NoError(t, err)
	assert.Equal(t, []string{"search_tool"}, names)
	assert.Equal(t, 1, strings.Count(string(doc.Render()), "search_tool"))
}

func TestAddTool_AppendsAtEndPreservingOrder(t *testing.T) {
	doc := openFixture(t, crewSource)

	require.NoError(t, doc.AddTool("researcher", "search_tool"))
	require.NoError(t, doc.AddTool("researcher", "scrape_tool"))

	names, err := doc.ToolNames("researcher")
	require.NoError(t, err)
	assert.Equal(t, []string{"search_tool", "scrape_tool"}, names)
}

func TestRemoveTool_EmptiesList(t *testing.T) {
	doc := openFixture(t, crewSource)

	require.NoError(t, doc.AddTool("researcher", "search_tool"))
	require.NoError(t, doc.RemoveTool("researcher", "search_tool"))

	names, err := doc.ToolNames("researcher")
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.Contains(t, string(doc.Render()), "tools=[]")
}

func TestRemoveTool_AbsentIsNoOp(t *testing.T) {
	doc := openFixture(t, crewSource)

	require.NoError(t, doc.RemoveTool("researcher", "never_added"))
	assert.False(t, doc.Dirty())
}

func TestRemoveTool_RemovesAllExactMatches(t *testing.T) {
	source := `@CrewBase
class DemoCrew():
    @agent
    def researcher(self) -> Agent:
        return Agent(tools=[search_tool, scrape_tool, search_tool])

    @task
    def summarize(self) -> Task:
        return Task()
`
	doc := openFixture(t, source)

	require.NoError(t, doc.RemoveTool("researcher", "search_tool"))

	names, err := doc.ToolNames("researcher")
	require.NoError(t, err)
	assert.Equal(t, []string{"scrape_tool"}, names)
}

func TestAddTool_AgentNotFound(t *testing.T) {
	doc := openFixture(t, crewSource)

	err := doc.AddTool("missing", "search_tool")
	var nferr *NotFoundError
	require.ErrorAs(t, err, &nferr)
	assert.Equal(t, KindAgent, nferr.Kind)
}

func TestToolList_ScenarioFromEmptyAndBack(t *testing.T) {
	doc := openFixture(t, crewSource)

	require.NoError(t, doc.AddTool("researcher", "search_tool"))
	require.NoError(t, doc.AddTool("researcher", "search_tool"))
	assert.Contains(t, string(doc.Render()), "tools=[search_tool]")

	require.NoError(t, doc.RemoveTool("researcher", "search_tool"))
	assert.Contains(t, string(doc.Render()), "tools=[]")
}
