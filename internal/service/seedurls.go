package service

// seedURLs is the fixed discovery-path seed list spec.md section 4.6 step 4
// requires: a non-empty compile-time constant array of absolute
// "https://.../" URLs representative of popular global sites. Transcribed
// from the original Rust runner's common_urls list; exact contents are not
// semantically significant.
var seedURLs = []string{
	"https://www.youtube.com/",
	"https://www.rust-lang.org/",
	"https://www.wikipedia.org/",
	"https://www.example.com/",
	"https://www.mozilla.org/",
	"https://www.github.com/",
	"https://www.google.com/",
	"https://www.facebook.com/",
	"https://www.twitter.com/",
	"https://www.instagram.com/",
	"https://www.linkedin.com/",
	"https://www.reddit.com/",
	"https://www.amazon.com/",
	"https://www.apple.com/",
	"https://www.microsoft.com/",
	"https://www.netflix.com/",
	"https://www.stackoverflow.com/",
	"https://www.bbc.com/",
	"https://www.cnn.com/",
	"https://www.nytimes.com/",
	"https://www.quora.com/",
	"https://www.paypal.com/",
	"https://www.dropbox.com/",
	"https://www.adobe.com/",
	"https://www.slack.com/",
	"https://www.twitch.tv/",
	"https://www.spotify.com/",
	"https://www.medium.com/",
	"https://www.booking.com/",
	"https://www.airbnb.com/",
	"https://www.uber.com/",
	"https://www.lyft.com/",
	"https://www.soundcloud.com/",
	"https://www.vimeo.com/",
	"https://www.flickr.com/",
	"https://www.imdb.com/",
	"https://www.pinterest.com/",
	"https://www.wordpress.com/",
	"https://www.tumblr.com/",
	"https://www.ebay.com/",
	"https://www.bing.com/",
	"https://www.duckduckgo.com/",
	"https://www.yandex.com/",
	"https://www.yahoo.com/",
	"https://www.weather.com/",
	"https://www.office.com/",
	"https://www.salesforce.com/",
	"https://www.shopify.com/",
	"https://www.tesla.com/",
	"https://www.walmart.com/",
	"https://www.target.com/",
	"https://www.nasa.gov/",
	"https://www.nationalgeographic.com/",
	"https://www.forbes.com/",
	"https://www.wsj.com/",
	"https://www.bloomberg.com/",
	"https://www.cnbc.com/",
	"https://www.foxnews.com/",
	"https://www.usatoday.com/",
	"https://www.time.com/",
	"https://www.theguardian.com/",
	"https://www.huffpost.com/",
	"https://www.latimes.com/",
	"https://www.chicagotribune.com/",
	"https://www.nbcnews.com/",
	"https://www.cbsnews.com/",
	"https://www.abcnews.go.com/",
	"https://www.npr.org/",
	"https://www.smh.com.au/",
	"https://www.lemonde.fr/",
	"https://www.spiegel.de/",
	"https://www.elpais.com/",
	"https://www.corriere.it/",
	"https://www.asahi.com/",
	"https://www.sina.com.cn/",
	"https://www.qq.com/",
	"https://www.taobao.com/",
	"https://www.tmall.com/",
	"https://www.baidu.com/",
	"https://www.sohu.com/",
	"https://www.weibo.com/",
	"https://www.163.com/",
	"https://www.jd.com/",
	"https://www.aliexpress.com/",
	"https://www.alibaba.com/",
	"https://www.booking.com/",
	"https://www.expedia.com/",
	"https://www.tripadvisor.com/",
	"https://www.skyscanner.net/",
	"https://www.kayak.com/",
	"https://www.zillow.com/",
	"https://www.trulia.com/",
	"https://www.rightmove.co.uk/",
	"https://www.autotrader.com/",
	"https://www.cars.com/",
	"https://www.carmax.com/",
	"https://www.indeed.com/",
	"https://www.glassdoor.com/",
	"https://www.monster.com/",
	"https://www.simplyhired.com/",
	"https://www.craigslist.org/",
	"https://www.meetup.com/",
	"https://www.eventbrite.com/",
	"https://www.change.org/",
	"https://www.whitehouse.gov/",
	"https://www.usa.gov/",
	"https://www.loc.gov/",
	"https://www.nih.gov/",
	"https://www.cdc.gov/",
	"https://www.fbi.gov/",
	"https://www.cia.gov/",
	"https://www.nsa.gov/",
	"https://www.un.org/",
	"https://www.europa.eu/",
	"https://www.who.int/",
	"https://www.imf.org/",
	"https://www.worldbank.org/",
	"https://www.oecd.org/",
	"https://www.wto.org/",
	"https://www.icann.org/",
	"https://www.iso.org/",
	"https://www.ietf.org/",
	"https://www.w3.org/",
	"https://www.gnu.org/",
	"https://www.linuxfoundation.org/",
	"https://www.apache.org/",
	"https://www.python.org/",
	"https://www.nodejs.org/",
	"https://www.npmjs.com/",
	"https://www.ruby-lang.org/",
	"https://www.php.net/",
	"https://www.mysql.com/",
	"https://www.postgresql.org/",
	"https://www.mongodb.com/",
	"https://www.redis.io/",
	"https://www.heroku.com/",
	"https://www.digitalocean.com/",
	"https://www.linode.com/",
	"https://www.cloudflare.com/",
	"https://www.vercel.com/",
	"https://www.netlify.com/",
	"https://www.gitlab.com/",
	"https://www.bitbucket.org/",
	"https://www.atlassian.com/",
	"https://www.trello.com/",
	"https://www.notion.so/",
	"https://www.zoho.com/",
	"https://www.mailchimp.com/",
	"https://www.hubspot.com/",
	"https://www.squarespace.com/",
	"https://www.wix.com/",
	"https://www.weebly.com/",
	"https://www.medium.com/",
	"https://www.substack.com/",
	"https://www.patreon.com/",
	"https://www.kickstarter.com/",
	"https://www.indiegogo.com/",
	"https://www.gofundme.com/",
	"https://www.ted.com/",
	"https://www.coursera.org/",
	"https://www.edx.org/",
	"https://www.udemy.com/",
	"https://www.khanacademy.org/",
	"https://www.codecademy.com/",
	"https://www.pluralsight.com/",
	"https://www.udacity.com/",
	"https://www.duolingo.com/",
	"https://www.memrise.com/",
	"https://www.rosettastone.com/",
	"https://www.babbel.com/",
	"https://www.openai.com/",
	"https://www.deepmind.com/",
	"https://www.anthropic.com/",
	"https://www.stability.ai/",
	"https://www.midjourney.com/",
	"https://www.perplexity.ai/",
	"https://www.runwayml.com/",
	"https://www.huggingface.co/",
	"https://www.replit.com/",
	"https://www.jsfiddle.net/",
	"https://www.codepen.io/",
	"https://www.codesandbox.io/",
	"https://www.stackexchange.com/",
	"https://www.superuser.com/",
	"https://www.serverfault.com/",
	"https://www.askubuntu.com/",
	"https://www.mathoverflow.net/",
	"https://www.acm.org/",
	"https://www.ieee.org/",
	"https://www.nature.com/",
	"https://www.sciencemag.org/",
	"https://www.cell.com/",
	"https://www.thelancet.com/",
	"https://www.jstor.org/",
	"https://www.arxiv.org/",
	"https://www.biorxiv.org/",
	"https://www.medrxiv.org/",
	"https://www.springer.com/",
	"https://www.elsevier.com/",
	"https://www.taylorandfrancis.com/",
	"https://www.cambridge.org/",
	"https://www.oxfordjournals.org/",
	"https://www.ssrn.com/",
	"https://www.researchgate.net/",
	"https://www.academia.edu/",
	"https://www.mit.edu/",
	"https://www.harvard.edu/",
	"https://www.stanford.edu/",
	"https://www.berkeley.edu/",
	"https://www.ox.ac.uk/",
	"https://www.cam.ac.uk/",
	"https://www.ethz.ch/",
	"https://www.tum.de/",
	"https://www.tokyo-u.ac.jp/",
	"https://www.kyoto-u.ac.jp/",
	"https://www.sydney.edu.au/",
	"https://www.unimelb.edu.au/",
	"https://www.tsinghua.edu.cn/",
	"https://www.pku.edu.cn/",
	"https://www.iitb.ac.in/",
	"https://www.iisc.ac.in/",
	"https://www.nus.edu.sg/",
	"https://www.ntu.edu.sg/",
	"https://www.kaist.ac.kr/",
	"https://www.snu.ac.kr/",
	"https://www.technion.ac.il/",
	"https://www.weizmann.ac.il/",
	"https://www.utoronto.ca/",
	"https://www.mcgill.ca/",
	"https://www.ubc.ca/",
	"https://www.uq.edu.au/",
	"https://www.unsw.edu.au/",
	"https://www.monash.edu/",
	"https://www.ucl.ac.uk/",
	"https://www.imperial.ac.uk/",
	"https://www.lse.ac.uk/",
	"https://www.kcl.ac.uk/",
	"https://www.ed.ac.uk/",
	"https://www.manchester.ac.uk/",
	"https://www.bristol.ac.uk/",
	"https://www.sheffield.ac.uk/",
	"https://www.southampton.ac.uk/",
	"https://www.nottingham.ac.uk/",
	"https://www.birmingham.ac.uk/",
	"https://www.leeds.ac.uk/",
	"https://www.liverpool.ac.uk/",
	"https://www.cardiff.ac.uk/",
	"https://www.gla.ac.uk/",
	"https://www.strath.ac.uk/",
	"https://www.abdn.ac.uk/",
	"https://www.dundee.ac.uk/",
	"https://www.st-andrews.ac.uk/",
	"https://www.hw.ac.uk/",
	"https://www.rgu.ac.uk/",
	"https://www.qmul.ac.uk/",
	"https://www.gold.ac.uk/",
	"https://www.soas.ac.uk/",
	"https://www.bbk.ac.uk/",
	"https://www.city.ac.uk/",
	"https://www.lshtm.ac.uk/",
	"https://www.open.ac.uk/",
	"https://www.roehampton.ac.uk/",
	"https://www.westminster.ac.uk/",
	"https://www.gre.ac.uk/",
	"https://www.kingston.ac.uk/",
	"https://www.mdx.ac.uk/",
	"https://www.uel.ac.uk/",
	"https://www.londonmet.ac.uk/",
	"https://www.sunderland.ac.uk/",
	"https://www.northumbria.ac.uk/",
	"https://www.newcastle.ac.uk/",
	"https://www.durham.ac.uk/",
	"https://www.york.ac.uk/",
	"https://www.hull.ac.uk/",
	"https://www.lincoln.ac.uk/",
	"https://www.derby.ac.uk/",
	"https://www.staffs.ac.uk/",
	"https://www.keele.ac.uk/",
	"https://www.wlv.ac.uk/",
	"https://www.coventry.ac.uk/",
	"https://www.warwick.ac.uk/",
	"https://www.le.ac.uk/",
	"https://www.lboro.ac.uk/",
	"https://www.nottstrent.ac.uk/",
	"https://www.shef.ac.uk/",
	"https://www.hud.ac.uk/",
	"https://www.bradford.ac.uk/",
	"https://www.salford.ac.uk/",
	"https://www.mmu.ac.uk/",
	"https://www.ljmu.ac.uk/",
	"https://www.edgehill.ac.uk/",
	"https://www.uclan.ac.uk/",
	"https://www.lancaster.ac.uk/",
	"https://www.bangor.ac.uk/",
	"https://www.swansea.ac.uk/",
	"https://www.aber.ac.uk/",
	"https://www.glyndwr.ac.uk/",
	"https://www.cardiffmet.ac.uk/",
	"https://www.southwales.ac.uk/",
	"https://www.wrexham.ac.uk/",
	"https://www.uwtsd.ac.uk/",
	"https://www.oxfordbrookes.ac.uk/",
	"https://www.brookes.ac.uk/",
	"https://www.beds.ac.uk/",
	"https://www.bucks.ac.uk/",
	"https://www.chi.ac.uk/",
	"https://www.canterbury.ac.uk/",
	"https://www.essex.ac.uk/",
	"https://www.herts.ac.uk/",
	"https://www.kent.ac.uk/",
	"https://www.port.ac.uk/",
	"https://www.surrey.ac.uk/",
	"https://www.sussex.ac.uk/",
	"https://www.anglia.ac.uk/",
	"https://www.aru.ac.uk/",
	"https://www.eastanglia.ac.uk/",
	"https://www.cam.ac.uk/",
	"https://www.plymouth.ac.uk/",
	"https://www.exeter.ac.uk/",
	"https://www.bath.ac.uk/",
	"https://www.bristol.ac.uk/",
	"https://www.glos.ac.uk/",
	"https://www.uwe.ac.uk/",
	"https://www.westofengland.ac.uk/",
	"https://www.bournemouth.ac.uk/",
	"https://www.solent.ac.uk/",
	"https://www.winchester.ac.uk/",
	"https://www.soton.ac.uk/",
	"https://www.reading.ac.uk/",
	"https://www.ox.ac.uk/",
	"https://www.brookes.ac.uk/",
	"https://www.beds.ac.uk/",
	"https://www.bucks.ac.uk/",
	"https://www.chi.ac.uk/",
	"https://www.canterbury.ac.uk/",
	"https://www.essex.ac.uk/",
	"https://www.herts.ac.uk/",
	"https://www.kent.ac.uk/",
	"https://www.port.ac.uk/",
	"https://www.surrey.ac.uk/",
	"https://www.sussex.ac.uk/",
	"https://www.anglia.ac.uk/",
	"https://www.aru.ac.uk/",
	"https://www.eastanglia.ac.uk/",
	"https://www.cam.ac.uk/",
	"https://www.plymouth.ac.uk/",
	"https://www.exeter.ac.uk/",
	"https://www.bath.ac.uk/",
	"https://www.bristol.ac.uk/",
	"https://www.glos.ac.uk/",
	"https://www.uwe.ac.uk/",
	"https://www.westofengland.ac.uk/",
	"https://www.bournemouth.ac.uk/",
	"https://www.solent.ac.uk/",
	"https://www.winchester.ac.uk/",
	"https://www.soton.ac.uk/",
	"https://www.reading.ac.uk/",
}
